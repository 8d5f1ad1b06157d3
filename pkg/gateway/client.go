package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for authorized calls. The session
// store satisfies it; an authorized call made while logged out simply goes
// out without an Authorization header and fails backend-side.
type TokenSource interface {
	Token() string
}

// Client talks to the storefront REST backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client (testing, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets the bearer token source for authorized calls.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// New creates a client for the backend at baseURL (e.g. "https://api.shop.example").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope is the backend's error response body.
type errorEnvelope struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// do executes one JSON request. A non-nil out receives the decoded response
// body. authorized adds the bearer token from the token source.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authorized bool) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Join(ErrDecodeFailed, err)
		}
	}
	return nil
}

// statusError maps a non-success response to a sentinel joined with the
// backend's description, falling back to its code, then the HTTP status.
func (c *Client) statusError(resp *http.Response) error {
	sentinel := ErrRequestFailed
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	}

	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	message := envelope.Description
	if message == "" {
		message = envelope.Code
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return errors.Join(sentinel, errors.New(message))
}
