// Package client is the request wrapper the UI pages talk through. It
// issues the Gift API operations against a configurable base address,
// applies a per-call timeout, and maintains the session store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ksaito/giftapi/internal/config"
)

// Client issues Gift API requests and keeps the session store current.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	store      SessionStore
	log        *zap.Logger
}

// New constructs a Client. A nil store falls back to an in-memory one.
func New(cfg config.ClientConfig, store SessionStore, log *zap.Logger) *Client {
	if store == nil {
		store = NewMemorySessionStore()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		store:      store,
		log:        log,
	}
}

// Session returns the currently persisted session.
func (c *Client) Session() (Session, error) {
	return c.store.Load()
}

// do performs one HTTP exchange. Failures collapse into the tagged
// conditions the pages act on: ErrTimeout, ErrNetwork, or an *APIError
// carrying the server message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		var serverErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &serverErr)

		return &APIError{Status: resp.StatusCode, Message: serverErr.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// bearerToken reads the persisted token, failing fast when no session
// is active.
func (c *Client) bearerToken() (string, error) {
	session, err := c.store.Load()
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if session.Token == "" {
		return "", ErrNotAuthenticated
	}
	return session.Token, nil
}
