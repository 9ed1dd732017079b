package rest

import (
	"log/slog"
	"net/http"
)

// clientOptions holds configuration options for the transport client.
type clientOptions struct {
	httpClient *http.Client
	jar        http.CookieJar
	logger     *slog.Logger
	userAgent  string
}

// Option is a functional option for configuring the Client.
type Option func(*clientOptions)

// WithHTTPClient configures the client with a custom *http.Client. The
// caller is responsible for attaching a cookie jar when session-based
// endpoints are in use; the default client always has one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *clientOptions) {
		opts.httpClient = httpClient
	}
}

// WithCookieJar replaces the cookie jar used by the default HTTP
// client, for callers that want to inspect or pre-seed the session
// cookie. Ignored when WithHTTPClient is also given.
func WithCookieJar(jar http.CookieJar) Option {
	return func(opts *clientOptions) {
		opts.jar = jar
	}
}

// WithLogger configures the client with a structured logger.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(opts *clientOptions) {
		opts.userAgent = userAgent
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *clientOptions {
	return &clientOptions{
		httpClient: nil, // Cookie-jar client built at construction
		logger:     nil, // No default logger
		userAgent:  "diversion-go",
	}
}

// applyOptions applies the given options to the client options.
func applyOptions(opts *clientOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
