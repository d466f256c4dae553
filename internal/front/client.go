// Package front is a client for the Front conversation API, covering the
// mutations the scorer needs: custom field updates, tag find-or-create, tag
// attachment and comments.
package front

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mattjoyce/axis-scorer/internal/log"
)

const (
	defaultBaseURL    = "https://api2.frontapp.com"
	defaultRetryDelay = 3 * time.Second
)

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryDelay sets the base delay of the rate-limit backoff. The actual
// sleep is delay × attempt number.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithRateLimitHook registers a callback invoked each time Front answers 429.
func WithRateLimitHook(hook func()) ClientOption {
	return func(c *Client) {
		c.rateLimitHook = hook
	}
}

// Client is bound to one access token. Safe for concurrent use.
type Client struct {
	accessToken   string
	baseURL       string
	httpClient    *http.Client
	retryDelay    time.Duration
	rateLimitHook func()
	logger        *slog.Logger
}

// New creates a Front API client.
func New(accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		accessToken: accessToken,
		baseURL:     defaultBaseURL,
		httpClient:  http.DefaultClient,
		retryDelay:  defaultRetryDelay,
		logger:      log.WithComponent("front"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scores carries the values written to the conversation's custom fields.
// The fields must already exist in the Front workspace.
type Scores struct {
	Axis float64
	RA   float64
	IE   float64
	HS   float64
}

// UpdateConversation applies the AXIS custom fields via a partial update.
func (c *Client) UpdateConversation(ctx context.Context, conversationID string, scores Scores) error {
	body := map[string]any{
		"custom_fields": map[string]float64{
			"AXIS Score": scores.Axis,
			"AXIS: RA":   scores.RA,
			"AXIS: IE":   scores.IE,
			"AXIS: HS":   scores.HS,
		},
	}
	if _, err := c.sendRequest(ctx, http.MethodPatch, "/conversations/"+conversationID, body); err != nil {
		return err
	}
	c.logger.Info("updated conversation", "conversation_id", conversationID)
	return nil
}

// FindOrCreateTag creates a tag and returns its id. Front's tag creation is
// find-or-create: posting an existing name returns the existing tag.
func (c *Client) FindOrCreateTag(ctx context.Context, name string) (string, error) {
	raw, err := c.sendRequest(ctx, http.MethodPost, "/tags", map[string]string{"name": name})
	if err != nil {
		return "", err
	}

	var tag struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", fmt.Errorf("decode tag response: %w", err)
	}
	if tag.ID == "" {
		return "", fmt.Errorf("tag response has no id")
	}
	return tag.ID, nil
}

// AddTags attaches tags to a conversation.
func (c *Client) AddTags(ctx context.Context, conversationID string, tagIDs []string) error {
	body := map[string][]string{"tag_ids": tagIDs}
	_, err := c.sendRequest(ctx, http.MethodPost, "/conversations/"+conversationID+"/tags", body)
	return err
}

// AddComment adds a markdown comment to a conversation.
func (c *Client) AddComment(ctx context.Context, conversationID, comment string) error {
	body := map[string]string{"body": comment}
	_, err := c.sendRequest(ctx, http.MethodPost, "/conversations/"+conversationID+"/comments", body)
	return err
}

// sendRequest is the shared request path: bearer auth and JSON headers on
// every call, retry on 429 with a linearly growing delay (no attempt
// ceiling), immediate failure on any other non-2xx status, and a nil body
// for 204 responses.
func (c *Client) sendRequest(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	for attempt := 1; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if c.rateLimitHook != nil {
				c.rateLimitHook()
			}
			delay := c.retryDelay * time.Duration(attempt)
			c.logger.Warn("rate limited by Front, backing off",
				"path", path,
				"attempt", attempt,
				"delay", delay.String(),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("%s %s failed: %s", method, path, resp.Status)
		}

		if resp.StatusCode == http.StatusNoContent {
			return nil, nil
		}
		return respBody, nil
	}
}
