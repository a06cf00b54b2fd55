// Package slack posts messages to Slack through the chat.postMessage Web API.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"prnotify/internal/ui"
)

const (
	defaultBaseURL = "https://slack.com/api"
	defaultTimeout = 30 * time.Second
)

// Client sends messages to Slack channels using a bot token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	out        io.Writer
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API root, for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithOutput redirects the progress/result markers away from stdout.
func WithOutput(out io.Writer) Option {
	return func(c *Client) {
		c.out = out
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a Slack client authenticating with the given bot token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type postMessageRequest struct {
	Channel     string `json:"channel"`
	Text        string `json:"text"`
	UnfurlLinks bool   `json:"unfurl_links"`
	UnfurlMedia bool   `json:"unfurl_media"`
}

// PostMessage sends text to a channel with link and media unfurling enabled.
// A transport-level failure (connection error, non-2xx status) is returned as
// an error. A 2xx response whose body lacks the "ok" marker is reported as a
// soft failure: (false, nil). The marker check is a substring scan of the raw
// body, matching the long-standing behavior of the workflow this replaces.
func (c *Client) PostMessage(ctx context.Context, channel, text string) (bool, error) {
	payload, err := json.Marshal(postMessageRequest{
		Channel:     channel,
		Text:        text,
		UnfurlLinks: true,
		UnfurlMedia: true,
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode message payload: %w", err)
	}

	url := c.baseURL + "/chat.postMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to post message: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("slack API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if !strings.Contains(string(body), "ok") {
		fmt.Fprintln(c.out, ui.Error(fmt.Sprintf("Slack API error: %s", strings.TrimSpace(string(body)))))
		return false, nil
	}

	fmt.Fprintln(c.out, ui.Success("Slack message sent successfully"))
	return true, nil
}
