// Package client is a small HTTP client for the NAKALA API
// (https://api.nakala.fr; https://apitest.nakala.fr for the sandbox).
// Authentication is a per-account API key sent as X-API-KEY. Calls are
// sequential and politely spaced: the sandbox throttles aggressive
// clients, so a configurable delay sits between consecutive requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the NAKALA test instance. Anyone can write to it
	// with the public test key, which makes it the right default for a
	// training tool.
	DefaultBaseURL = "https://apitest.nakala.fr"

	// TestAPIKey is the publicly documented key for the test instance.
	TestAPIKey = "aae99aba-476e-4ff2-2886-0aaf1bfa6fd2"

	defaultTimeout = 30 * time.Second

	// DefaultDelay is the pause between consecutive API calls.
	DefaultDelay = time.Second
)

// Client talks to one NAKALA instance.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Delay      time.Duration

	mu       sync.Mutex
	lastCall time.Time
}

// New creates a client for the given instance. An empty baseURL selects
// the test instance.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		Delay: DefaultDelay,
	}
}

// APIError is a non-2xx response from NAKALA.
type APIError struct {
	Status  int    // HTTP status
	Code    int    // NAKALA error code, when the body carried one
	Message string // NAKALA error message, or the raw body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nakala: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("nakala: HTTP %d", e.Status)
}

// IsNotFound reports whether err is, or wraps, a NAKALA 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// createResponse is the envelope POST /datas and POST /collections wrap
// around the new identifier.
type createResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Payload struct {
		ID string `json:"id"`
	} `json:"payload"`
}

// throttle enforces the inter-call delay.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	wait := c.Delay - time.Since(c.lastCall)
	c.lastCall = time.Now().Add(wait)
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// do performs one JSON API call. body is marshaled when non-nil; the
// response body is decoded into out when non-nil and present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("nakala api call", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{Status: status}

	var envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
		return apiErr
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	apiErr.Message = msg
	return apiErr
}
