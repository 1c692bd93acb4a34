// Package api implements the HTTP client for the remote authoritative
// store: authentication plus per-collection pull and push.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dukapos/duka/pkg/api"
)

// Error is an HTTP-level rejection from the remote store, as opposed to a
// transport failure. The replication engine uses the distinction to tell
// "sync error" from "offline".
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsRemote reports whether err carries an HTTP-level rejection. A false
// result for a failed request means the remote was never reached.
func IsRemote(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}

// Client is the HTTP client for the remote store.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register creates an account on the remote store.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Pull requests the collection's documents modified after the
// (since, sinceID) cursor, ordered by _modified ascending, at most limit.
func (c *Client) Pull(ctx context.Context, token, collection, since, sinceID string, limit int) (*api.PullResponse, error) {
	q := url.Values{}
	if since != "" {
		q.Set("since", since)
		q.Set("since_id", sinceID)
	}
	q.Set("limit", strconv.Itoa(limit))

	path := fmt.Sprintf("/api/v1/sync/%s?%s", url.PathEscape(collection), q.Encode())

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Push submits a batch of locally modified documents and returns the
// server copies with server-assigned _modified.
func (c *Client) Push(ctx context.Context, token, collection string, req api.PushRequest) (*api.PushResponse, error) {
	path := fmt.Sprintf("/api/v1/sync/%s", url.PathEscape(collection))

	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs one HTTP exchange, retrying transient failures
// (transport errors, 5xx, 429) a couple of times with constant backoff and
// jitter. Client errors such as auth expiry surface immediately.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	backoff := retry.WithMaxRetries(2, retry.WithJitter(100*time.Millisecond, retry.NewConstant(500*time.Millisecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, method, path, token, body, result)
		if err == nil {
			return nil
		}

		var apiErr *Error
		if errors.As(err, &apiErr) {
			if apiErr.Status >= 500 || apiErr.Status == http.StatusTooManyRequests {
				return retry.RetryableError(err)
			}
			return err
		}

		if ctx.Err() != nil {
			return err
		}
		// Transport-level failure: worth retrying.
		return retry.RetryableError(err)
	})
}

func (c *Client) do(ctx context.Context, method, path, token string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &Error{Status: resp.StatusCode, Message: errResp.Message}
		}
		return &Error{Status: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
