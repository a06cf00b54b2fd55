// Package summary reduces PR descriptions and commit logs to a single short
// sentence suitable for a chat notification. It is a deterministic, rule-based
// heuristic for short developer-authored text, not a general summarizer.
package summary

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxLength is the character cap applied when no explicit
	// limit is configured.
	DefaultMaxLength = 100

	// Summaries shorter than this are considered too terse and get
	// extended with following sentences when room allows.
	minSummaryLength = 20

	// At most this many commit subjects contribute to a combined summary.
	maxCommitSubjects = 3

	noDescriptionFallback = "No description available"
	noCommitsFallback     = "No commits found"
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// Commit subjects containing any of these (case-insensitive) carry no
// reviewable content and are skipped when better subjects exist.
var skipPatterns = []string{"merge", "wip", "fixup", "squash", "revert"}

// Summarize returns one sentence describing text, never longer than maxLen.
// Empty input yields a fixed fallback string.
func Summarize(text string, maxLen int) string {
	if text == "" {
		return noDescriptionFallback
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	cleaned := Clean(text)

	var sentences []string
	for _, part := range sentenceSplitRegex.Split(cleaned, -1) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return noDescriptionFallback
	}

	result := sentences[0]

	// A very short first sentence is usually generic ("Fixes bug").
	// Greedily pull in following sentences while they fit the cap.
	if len(result) < minSummaryLength {
		for _, sentence := range sentences[1:] {
			combined := result + " " + sentence
			if len(combined) > maxLen {
				break
			}
			result = combined
		}
	}

	if len(result) > maxLen {
		result = truncate(result, maxLen)
	}

	return result
}

// truncate shortens s to at most maxLen bytes and appends the ellipsis
// marker. The cut never lands inside a multi-byte rune, and pathologically
// small caps degrade to the bare marker instead of a negative slice index.
func truncate(s string, maxLen int) string {
	cut := maxLen - 3
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// SummarizeCommits reduces an ordered list of commit subjects to one summary
// sentence. Housekeeping commits (merges, fixups, etc.) are filtered out
// unless that would leave nothing to summarize.
func SummarizeCommits(messages []string, maxLen int) string {
	if len(messages) == 0 {
		return noCommitsFallback
	}

	filtered := make([]string, 0, len(messages))
	for _, msg := range messages {
		if !isHousekeepingCommit(msg) {
			filtered = append(filtered, msg)
		}
	}
	if len(filtered) == 0 {
		filtered = messages
	}

	if len(filtered) > maxCommitSubjects {
		filtered = filtered[:maxCommitSubjects]
	}

	if len(filtered) == 1 {
		return Summarize(filtered[0], maxLen)
	}
	return Summarize(strings.Join(filtered, " and "), maxLen)
}

func isHousekeepingCommit(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range skipPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
