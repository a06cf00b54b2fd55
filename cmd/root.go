package cmd

import (
	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	appVersion    = "dev"
	appCommitHash = "unknown"
	appBuildDate  = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(version, commitHash, buildDate string) {
	appVersion = version
	appCommitHash = commitHash
	appBuildDate = buildDate
}

// NewRootCmd creates a new instance of the root command for testing
// This prevents shared state issues in concurrent tests
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prnotify",
		Short: "Slack notifications for opened pull requests",
		Long: `prnotify posts a Slack message announcing an opened pull request,
summarizing its description (or its commit log when the description is empty).

It is meant to run from CI: all inputs come from environment variables set by
the workflow (SLACK_BOT_TOKEN, SLACK_CHANNEL, PR_NUMBER, PR_TITLE, PR_BODY,
PR_URL, PR_AUTHOR, REPO_NAME, BASE_SHA, HEAD_SHA).

Examples:
  prnotify            # Send the notification for the current PR
  prnotify notify     # Same as above
  prnotify version    # Show version information`,
		Args: cobra.NoArgs,
		RunE: runNotify,
	}

	cmd.AddCommand(notifyCmd)
	cmd.AddCommand(versionCmd)
	cmd.AddCommand(helloCmd)

	return cmd
}

var rootCmd = &cobra.Command{
	Use:   "prnotify",
	Short: "Slack notifications for opened pull requests",
	Long: `prnotify posts a Slack message announcing an opened pull request,
summarizing its description (or its commit log when the description is empty).

It is meant to run from CI: all inputs come from environment variables set by
the workflow (SLACK_BOT_TOKEN, SLACK_CHANNEL, PR_NUMBER, PR_TITLE, PR_BODY,
PR_URL, PR_AUTHOR, REPO_NAME, BASE_SHA, HEAD_SHA).

Examples:
  prnotify            # Send the notification for the current PR
  prnotify notify     # Same as above
  prnotify version    # Show version information`,
	Args: cobra.NoArgs,
	RunE: runNotify,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(helloCmd)
}
