// Package github fetches pull request metadata from the GitHub API. It is
// used when the CI environment supplies only a PR number and repository,
// letting the notifier fill in the remaining fields itself.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"

	"prnotify/internal/notify"
)

// ErrInvalidRepoName is returned when a repository name is not "owner/repo".
var ErrInvalidRepoName = errors.New("repository name must be in owner/repo form")

// Client wraps the GitHub API for pull request lookups.
type Client struct {
	client *github.Client
}

// NewClient creates a client authenticating with a static token.
func NewClient(token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &Client{client: github.NewClient(tc)}
}

// NewClientWithHTTPClient creates a client over an existing HTTP client,
// optionally pointed at a different API root for tests.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	gh := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		gh.BaseURL = u
	}
	return &Client{client: gh}, nil
}

// PullRequest fetches PR metadata and returns it as the value the rest of
// the workflow consumes. repoName is "owner/repo".
func (c *Client) PullRequest(ctx context.Context, repoName string, number int) (notify.PRInfo, error) {
	owner, repo, err := splitRepoName(repoName)
	if err != nil {
		return notify.PRInfo{}, err
	}

	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return notify.PRInfo{}, fmt.Errorf("failed to fetch PR #%d from %s: %w", number, repoName, err)
	}

	return notify.PRInfo{
		Number:     strconv.Itoa(number),
		Title:      pr.GetTitle(),
		Body:       pr.GetBody(),
		URL:        pr.GetHTMLURL(),
		Author:     pr.GetUser().GetLogin(),
		Repository: repoName,
		BaseSHA:    pr.GetBase().GetSHA(),
		HeadSHA:    pr.GetHead().GetSHA(),
	}, nil
}

func splitRepoName(repoName string) (owner, repo string, err error) {
	parts := strings.SplitN(repoName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoName, repoName)
	}
	return parts[0], parts[1], nil
}
