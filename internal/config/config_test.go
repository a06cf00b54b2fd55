package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSlackToken, "xoxb-token")
	t.Setenv(EnvSlackChannel, "#eng")
	t.Setenv(EnvPRNumber, "42")
	t.Setenv(EnvPRTitle, "Add retry logic")
	t.Setenv(EnvPRBody, "This PR adds retry logic.")
	t.Setenv(EnvPRURL, "https://github.com/acme/widgets/pull/42")
	t.Setenv(EnvPRAuthor, "octocat")
	t.Setenv(EnvRepoName, "acme/widgets")
	t.Setenv(EnvBaseSHA, "aaa111")
	t.Setenv(EnvHeadSHA, "bbb222")
	t.Setenv(EnvGitHubToken, "ghp_token")
}

func TestFromEnv(t *testing.T) {
	setFullEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "xoxb-token", cfg.SlackToken)
	assert.Equal(t, "#eng", cfg.SlackChannel)
	assert.Equal(t, "42", cfg.PRNumber)
	assert.Equal(t, "Add retry logic", cfg.PRTitle)
	assert.Equal(t, "This PR adds retry logic.", cfg.PRBody)
	assert.Equal(t, "https://github.com/acme/widgets/pull/42", cfg.PRURL)
	assert.Equal(t, "octocat", cfg.PRAuthor)
	assert.Equal(t, "acme/widgets", cfg.RepoName)
	assert.Equal(t, "aaa111", cfg.BaseSHA)
	assert.Equal(t, "bbb222", cfg.HeadSHA)
	assert.Equal(t, "ghp_token", cfg.GitHubToken)

	// Settings come pre-populated with defaults.
	assert.Equal(t, 100, cfg.Settings.SummaryMaxLength)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			SlackToken:   "xoxb-token",
			SlackChannel: "#eng",
			PRNumber:     "42",
			PRTitle:      "title",
			PRURL:        "url",
			PRAuthor:     "octocat",
			RepoName:     "acme/widgets",
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing slack token", func(t *testing.T) {
		cfg := valid()
		cfg.SlackToken = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvSlackToken)
	})

	t.Run("missing slack channel", func(t *testing.T) {
		cfg := valid()
		cfg.SlackChannel = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvSlackChannel)
	})

	t.Run("missing PR fields listed by name", func(t *testing.T) {
		cfg := valid()
		cfg.PRTitle = ""
		cfg.PRAuthor = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required PR information")
		assert.Contains(t, err.Error(), EnvPRTitle)
		assert.Contains(t, err.Error(), EnvPRAuthor)
		assert.NotContains(t, err.Error(), EnvPRURL)
	})

	t.Run("body and SHAs are optional", func(t *testing.T) {
		cfg := valid()
		cfg.PRBody = ""
		cfg.BaseSHA = ""
		cfg.HeadSHA = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestPR(t *testing.T) {
	cfg := Config{
		PRNumber: "42",
		PRTitle:  "title",
		PRBody:   "body",
		PRURL:    "url",
		PRAuthor: "octocat",
		RepoName: "acme/widgets",
		BaseSHA:  "aaa",
		HeadSHA:  "bbb",
	}

	pr := cfg.PR()
	assert.Equal(t, "42", pr.Number)
	assert.Equal(t, "title", pr.Title)
	assert.Equal(t, "body", pr.Body)
	assert.Equal(t, "url", pr.URL)
	assert.Equal(t, "octocat", pr.Author)
	assert.Equal(t, "acme/widgets", pr.Repository)
	assert.Equal(t, "aaa", pr.BaseSHA)
	assert.Equal(t, "bbb", pr.HeadSHA)
}
