// Package config assembles the runtime configuration for prnotify from the
// CI environment and an optional settings file. Configuration is read once at
// process start into an explicit value object; nothing reads the environment
// after that.
package config

import (
	"fmt"
	"os"
	"strings"

	"prnotify/internal/notify"
)

// Environment variables consumed from the CI platform.
const (
	EnvSlackToken   = "SLACK_BOT_TOKEN"
	EnvSlackChannel = "SLACK_CHANNEL"
	EnvPRNumber     = "PR_NUMBER"
	EnvPRTitle      = "PR_TITLE"
	EnvPRBody       = "PR_BODY"
	EnvPRURL        = "PR_URL"
	EnvPRAuthor     = "PR_AUTHOR"
	EnvRepoName     = "REPO_NAME"
	EnvBaseSHA      = "BASE_SHA"
	EnvHeadSHA      = "HEAD_SHA"
	EnvGitHubToken  = "GITHUB_TOKEN"
)

// Config is the full runtime configuration for one notification run.
type Config struct {
	SlackToken   string
	SlackChannel string

	PRNumber string
	PRTitle  string
	PRBody   string
	PRURL    string
	PRAuthor string
	RepoName string
	BaseSHA  string
	HeadSHA  string

	// GitHubToken is optional; when set, missing PR fields can be
	// fetched from the GitHub API instead of failing validation.
	GitHubToken string

	Settings Settings
}

// FromEnv builds a Config from the process environment. It does not
// validate; call Validate before using the result.
func FromEnv() Config {
	return Config{
		SlackToken:   os.Getenv(EnvSlackToken),
		SlackChannel: os.Getenv(EnvSlackChannel),
		PRNumber:     os.Getenv(EnvPRNumber),
		PRTitle:      os.Getenv(EnvPRTitle),
		PRBody:       os.Getenv(EnvPRBody),
		PRURL:        os.Getenv(EnvPRURL),
		PRAuthor:     os.Getenv(EnvPRAuthor),
		RepoName:     os.Getenv(EnvRepoName),
		BaseSHA:      os.Getenv(EnvBaseSHA),
		HeadSHA:      os.Getenv(EnvHeadSHA),
		GitHubToken:  os.Getenv(EnvGitHubToken),
		Settings:     DefaultSettings(),
	}
}

// Validate checks that every required field is present. The returned error
// names the missing environment variable(s) so CI logs point at the fix.
func (c *Config) Validate() error {
	if c.SlackToken == "" {
		return fmt.Errorf("%s environment variable is required", EnvSlackToken)
	}
	if c.SlackChannel == "" {
		return fmt.Errorf("%s environment variable is required", EnvSlackChannel)
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{EnvPRNumber, c.PRNumber},
		{EnvPRTitle, c.PRTitle},
		{EnvPRURL, c.PRURL},
		{EnvPRAuthor, c.PRAuthor},
		{EnvRepoName, c.RepoName},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required PR information: %s", strings.Join(missing, ", "))
	}
	return nil
}

// PR packages the pull request fields into the value the composer consumes.
func (c *Config) PR() notify.PRInfo {
	return notify.PRInfo{
		Number:     c.PRNumber,
		Title:      c.PRTitle,
		Body:       c.PRBody,
		URL:        c.PRURL,
		Author:     c.PRAuthor,
		Repository: c.RepoName,
		BaseSHA:    c.BaseSHA,
		HeadSHA:    c.HeadSHA,
	}
}
