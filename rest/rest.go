package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Client is the HTTP primitive for the Diversion API. All requests are
// relative to the base URL and share a cookie jar so the session cookie
// issued at login is presented on every subsequent call.
type Client struct {
	// baseURL is the API origin, without a trailing slash.
	baseURL string

	// httpClient carries the cookie jar. Immutable after construction.
	httpClient *http.Client

	// logger is optional; nil disables logging.
	logger *slog.Logger

	// userAgent is sent on every request.
	userAgent string
}

// New creates a client for the API rooted at baseURL. Unless overridden
// with WithHTTPClient, the client gets a fresh cookie jar and no timeout.
//
// Example:
//
//	client, err := rest.New("https://diversion.example.com",
//	    rest.WithLogger(slog.Default()),
//	)
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	options := defaultOptions()
	applyOptions(options, opts)

	httpClient := options.httpClient
	if httpClient == nil {
		jar := options.jar
		if jar == nil {
			var err error
			jar, err = cookiejar.New(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to create cookie jar: %w", err)
			}
		}
		httpClient = &http.Client{Jar: jar}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     options.logger,
		userAgent:  options.userAgent,
	}, nil
}

// Get issues a GET request and decodes the JSON response into out.
// Pass a nil out to discard the body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with an optional JSON body and decodes the
// JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with an optional JSON body. The API commonly
// answers updates with 204; a nil out accepts that.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request. Responses are expected to carry no
// meaningful body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do builds, sends and decodes one request. Every mutating call in the
// application is exactly one invocation of do; there is no partial
// success to reason about client-side.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "issuing request",
			"method", method,
			"path", path,
			"request_id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.ErrorContext(ctx, "request failed",
				"method", method,
				"path", path,
				"request_id", requestID,
				"error", err)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.decodeError(resp)
		if c.logger != nil {
			c.logger.WarnContext(ctx, "request rejected",
				"method", method,
				"path", path,
				"request_id", requestID,
				"status", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

// decodeError turns a non-2xx response into an *APIError. JSON bodies are
// decoded into the error taxonomy; anything else degrades to a status-only
// error the caller renders with a generic fallback string.
func (c *Client) decodeError(resp *http.Response) *APIError {
	var body errorBody

	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		// A non-JSON body (HTML error pages and the like) leaves the
		// shape empty, which classifies as CodeUnknown.
		_ = json.Unmarshal(data, &body)
	}

	return classify(resp.StatusCode, body)
}
