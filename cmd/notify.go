package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"prnotify/internal/config"
	"prnotify/internal/git"
	"prnotify/internal/github"
	"prnotify/internal/notify"
	"prnotify/internal/slack"
	"prnotify/internal/summary"
	"prnotify/internal/ui"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send the Slack notification for an opened pull request",
	Long: `Send a Slack message announcing the pull request described by the
environment. The message summarizes the PR description; when the description
is empty, the commit subjects between BASE_SHA and HEAD_SHA are summarized
instead.

If PR_TITLE and the other metadata variables are absent but GITHUB_TOKEN,
REPO_NAME and PR_NUMBER are set, the missing fields are fetched from the
GitHub API before the message is composed.`,
	Args: cobra.NoArgs,
	RunE: runNotify,
}

// prFetcher is the slice of the GitHub client the notify workflow needs.
type prFetcher interface {
	PullRequest(ctx context.Context, repoName string, number int) (notify.PRInfo, error)
}

func runNotify(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	cfg.Settings = settings
	out := cmd.OutOrStdout()

	if needsGitHubLookup(&cfg) {
		if err := fillFromGitHub(cmd.Context(), &cfg, github.NewClient(cfg.GitHubToken)); err != nil {
			// Not fatal on its own: validation below reports what is
			// still missing.
			fmt.Fprintf(out, "Could not fetch PR metadata from GitHub: %v\n", err)
		}
	}

	transport := slack.New(cfg.SlackToken,
		slack.WithTimeout(time.Duration(cfg.Settings.RequestTimeoutSeconds)*time.Second),
		slack.WithOutput(out))

	return runNotifyWorkflow(cmd.Context(), &cfg, git.NewCLIHistory(), transport, out)
}

// runNotifyWorkflow is the full notification pipeline: validate, summarize,
// compose, deliver. Dependencies are injected so tests can substitute the
// history provider and the transport.
func runNotifyWorkflow(ctx context.Context, cfg *config.Config, history git.HistoryProvider, transport notify.Transport, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out, ui.Error(err.Error()))
		return err
	}

	pr := cfg.PR()
	fmt.Fprintf(out, "Processing PR #%s: %s\n", pr.Number, ui.Bold(pr.Title))

	summaryText := buildSummary(ctx, pr, history, cfg.Settings.SummaryMaxLength, out)

	message := notify.Compose(pr, summaryText)
	fmt.Fprintf(out, "Sending message to #%s\n", cfg.SlackChannel)
	fmt.Fprintf(out, "Message: %s\n", message)

	ok, err := transport.PostMessage(ctx, cfg.SlackChannel, message)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	if !ok {
		return errors.New("slack reported delivery failure")
	}

	fmt.Fprintln(out, ui.Success("Process completed successfully"))
	return nil
}

// buildSummary picks the summary source: the PR description when present,
// the commit log otherwise. A failed history lookup is absorbed as "no
// commits" rather than aborting the run.
func buildSummary(ctx context.Context, pr notify.PRInfo, history git.HistoryProvider, maxLen int, out io.Writer) string {
	if strings.TrimSpace(pr.Body) != "" {
		fmt.Fprintln(out, "Using PR description for summary")
		return summary.Summarize(pr.Body, maxLen)
	}

	fmt.Fprintln(out, "No PR description found, using commit messages")
	if pr.BaseSHA == "" || pr.HeadSHA == "" {
		return "No description or commits available"
	}

	messages, err := history.CommitMessages(ctx, pr.BaseSHA, pr.HeadSHA)
	if err != nil {
		fmt.Fprintf(out, "Error getting commit messages: %v\n", err)
		messages = nil
	}
	return summary.SummarizeCommits(messages, maxLen)
}

// needsGitHubLookup reports whether the environment left PR metadata gaps
// that the GitHub API could fill.
func needsGitHubLookup(cfg *config.Config) bool {
	if cfg.GitHubToken == "" || cfg.RepoName == "" || cfg.PRNumber == "" {
		return false
	}
	return cfg.PRTitle == "" || cfg.PRURL == "" || cfg.PRAuthor == ""
}

// fillFromGitHub fetches the PR and fills only the fields the environment
// left empty; explicitly provided values win.
func fillFromGitHub(ctx context.Context, cfg *config.Config, fetcher prFetcher) error {
	number, err := strconv.Atoi(cfg.PRNumber)
	if err != nil {
		return fmt.Errorf("invalid PR number %q: %w", cfg.PRNumber, err)
	}

	pr, err := fetcher.PullRequest(ctx, cfg.RepoName, number)
	if err != nil {
		return err
	}

	if cfg.PRTitle == "" {
		cfg.PRTitle = pr.Title
	}
	if cfg.PRBody == "" {
		cfg.PRBody = pr.Body
	}
	if cfg.PRURL == "" {
		cfg.PRURL = pr.URL
	}
	if cfg.PRAuthor == "" {
		cfg.PRAuthor = pr.Author
	}
	if cfg.BaseSHA == "" {
		cfg.BaseSHA = pr.BaseSHA
	}
	if cfg.HeadSHA == "" {
		cfg.HeadSHA = pr.HeadSHA
	}
	return nil
}
