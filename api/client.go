// Package api is the typed HTTP client for the console backend. Every
// endpoint has an explicit request/response schema, validated at the
// boundary: a body that does not decode yields a [DecodeError], never a
// silently defaulted struct.
//
// The client injects the bearer credential on every call and reacts to an
// authentication-failure envelope from any endpoint by clearing the
// persisted credential and invoking the session-expired hook exactly once
// per failing call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linminwei/notion-hub-go/credential"
)

const (
	codeOK           = 200
	codeUnauthorized = 401

	defaultTimeout = 15 * time.Second
)

// Options configures a [Client].
type Options struct {
	// BaseURL is the backend root, e.g. "https://console.example.com/api".
	BaseURL string
	// HTTPClient is optional; a client with a default timeout is used when nil.
	HTTPClient *http.Client
	// Credentials supplies the bearer token and is cleared on auth failure.
	Credentials credential.Store
	// OnUnauthorized, when set, runs after an authentication-failure signal
	// has cleared the credential. Used to surface the session-expired notice.
	OnUnauthorized func(ctx context.Context)
	// Logger is optional; slog.Default is used when nil.
	Logger *slog.Logger
}

// Client talks to the console backend. It is safe for concurrent use.
type Client struct {
	baseURL        string
	http           *http.Client
	creds          credential.Store
	onUnauthorized func(ctx context.Context)
	logger         *slog.Logger
}

// NewClient validates the options and builds a [Client].
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("api: base URL required")
	}
	if opts.Credentials == nil {
		return nil, errors.New("api: credential store required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           httpClient,
		creds:          opts.Credentials,
		onUnauthorized: opts.OnUnauthorized,
		logger:         logger,
	}, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.creds.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.unauthorized(ctx, path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}

	switch env.Code {
	case codeOK:
	case codeUnauthorized:
		return c.unauthorized(ctx, path)
	default:
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}
	return nil
}

func (c *Client) unauthorized(ctx context.Context, path string) error {
	c.logger.Warn("session expired", "endpoint", path)
	c.creds.Clear(ctx)
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
	return ErrUnauthorized
}
