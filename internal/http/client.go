// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"runtime"
	"time"

	"github.com/wneessen/climate-comfort/internal/logger"
)

const (
	// DefaultTimeout is the default timeout value for the HTTPClient
	DefaultTimeout = time.Second * 10
)

var (
	// version is the version of the application (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent that the HTTP client sends with API requests
	UserAgent = fmt.Sprintf("Mozilla/5.0 (%s; %s) climate-comfort/%s (+https://github.com/wneessen/climate-comfort/)",
		runtime.GOOS,
		runtime.GOARCH,
		version,
	)

	ErrNonPointerTarget = errors.New("target must be a non-nil pointer")
)

// Client wraps the stdlib http.Client for JSON APIs.
type Client struct {
	*http.Client
	logger *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout of every request. Non-positive values keep DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// New returns a new HTTP client
func New(logger *logger.Logger, opts ...Option) *Client {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	httpTransport := &http.Transport{TLSClientConfig: tlsConfig}
	client := &Client{
		Client: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: httpTransport,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Get performs a HTTP GET request for the endpoint and query and JSON-decodes the response body
// into target. It returns the status code of the response, or 0 if no response was received.
// Error responses whose body is not JSON (e.g. a proxy's HTML page) are reported through the
// status code alone.
func (h *Client) Get(ctx context.Context, endpoint string, target any, query url.Values) (int, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, ErrNonPointerTarget
	}

	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed create new HTTP request with context: %w", err)
	}
	request.Header.Set("User-Agent", UserAgent)
	request.Header.Set("Accept", "application/json")

	response, err := h.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	if response == nil {
		return 0, errors.New("nil response received")
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error("failed to close HTTP response body", logger.Err(err))
		}
	}(response.Body)

	err = json.NewDecoder(response.Body).Decode(target)
	switch {
	case err == nil:
		return response.StatusCode, nil
	case response.StatusCode < 200 || response.StatusCode > 299:
		h.logger.Debug("undecodable error response", slog.Int("status", response.StatusCode),
			slog.String("endpoint", reqURL.Host+reqURL.Path))
		return response.StatusCode, nil
	default:
		return response.StatusCode, fmt.Errorf("failed to decode JSON: %w", err)
	}
}
