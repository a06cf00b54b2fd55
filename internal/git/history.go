// Package git queries commit history through the local git binary.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const defaultQueryTimeout = 10 * time.Second

// HistoryProvider returns the commit subject lines strictly between two
// revisions. Implementations report a query failure as an error; callers
// decide whether that is fatal.
type HistoryProvider interface {
	CommitMessages(ctx context.Context, baseRevision, headRevision string) ([]string, error)
}

// CLIHistory reads commit history by running git log.
type CLIHistory struct {
	// RepoPath is the working directory for git invocations.
	// Empty means the process working directory.
	RepoPath string

	// Timeout bounds a single git invocation. Zero means the default.
	Timeout time.Duration
}

// NewCLIHistory creates a history provider for the current directory.
func NewCLIHistory() *CLIHistory {
	return &CLIHistory{Timeout: defaultQueryTimeout}
}

// CommitMessages runs `git log --pretty=format:%s base..head` and returns the
// non-empty subject lines in the order git reports them.
func (h *CLIHistory) CommitMessages(ctx context.Context, baseRevision, headRevision string) ([]string, error) {
	timeout := h.Timeout
	if timeout == 0 {
		timeout = defaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rangeSpec := fmt.Sprintf("%s..%s", baseRevision, headRevision)
	cmd := exec.CommandContext(ctx, "git", "log", "--pretty=format:%s", rangeSpec)
	if h.RepoPath != "" {
		cmd.Dir = h.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("git log %s: %w: %s", rangeSpec, err, detail)
		}
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	return parseSubjects(stdout.String()), nil
}

// parseSubjects splits git log output into trimmed, non-empty subject lines.
func parseSubjects(output string) []string {
	var subjects []string
	for _, line := range strings.Split(output, "\n") {
		if subject := strings.TrimSpace(line); subject != "" {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}
