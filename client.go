package psa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/precisionsustainableag/psa-go/security"
	"github.com/precisionsustainableag/psa-go/transport"
)

// HeaderAPIKey is the request header carrying the API key.
const HeaderAPIKey = "x-api-key"

// Client is a PSA API client.
// It is safe for concurrent use from multiple goroutines.
type Client struct {
	config    *clientConfig
	transport transport.Transport
	logger    *zap.Logger
}

// New creates a new PSA client with the given options.
//
// Example:
//
//	client, err := psa.New(
//	    psa.WithAPIKey(os.Getenv("PSA_API_KEY")),
//	)
func New(opts ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	t := config.transport
	if t == nil {
		httpClient := config.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: config.timeout}
		}
		t = transport.NewHTTP(transport.WithHTTPClient(httpClient))
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("transport", t.Name()))

	if config.apiKey != "" {
		logger.Debug("api key configured",
			zap.String("key_fingerprint", security.Fingerprint(config.apiKey)))
	}
	if config.apiKey != "" && (!t.IsEncrypted() || !strings.HasPrefix(config.baseURL, "https://")) {
		logger.Warn("api key will be sent over an unencrypted transport",
			zap.String("base_url", config.baseURL))
	}

	return &Client{
		config:    config,
		transport: t,
		logger:    logger,
	}, nil
}

// MustNew creates a new PSA client with the given options.
// Panics if the configuration is invalid.
func MustNew(opts ...Option) *Client {
	client, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// validateConfig validates the client configuration.
func validateConfig(config *clientConfig) error {
	u, err := url.Parse(config.baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base URL %q must include scheme and host", config.baseURL)
	}
	if config.timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// URL returns the exact URL a request for path and q is sent to.
func (c *Client) URL(path string, q Query) string {
	return joinURL(c.config.baseURL, path, q)
}

// NewRequest builds the outbound request for path and q.
// The header carries only the API key, and only when one is configured.
func (c *Client) NewRequest(path string, q Query) *transport.Request {
	header := make(http.Header)
	if c.config.apiKey != "" {
		header.Set(HeaderAPIKey, c.config.apiKey)
	}
	return &transport.Request{
		Method: http.MethodGet,
		URL:    c.URL(path, q),
		Header: header,
	}
}

// GetRaw performs a single GET request and returns the response as is.
// The status code is not checked; see Response.ToError.
func (c *Client) GetRaw(ctx context.Context, path string, q Query) (*Response, error) {
	req := c.NewRequest(path, q)
	log := c.logger.With(zap.String("method", req.Method), zap.String("url", req.URL))

	log.Debug("sending request")
	tr, err := c.transport.RoundTrip(ctx, req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	log.Debug("received response",
		zap.Int("status", tr.StatusCode),
		zap.Int("bytes", len(tr.Body)))

	return &Response{
		URL:        req.URL,
		StatusCode: tr.StatusCode,
		Reason:     tr.Reason,
		Header:     tr.Header,
		Body:       tr.Body,
	}, nil
}

// Get performs a GET request and decodes the JSON body into dst.
// Non-2xx responses are returned as *Error.
//
// Example:
//
//	var readings []map[string]any
//	err := client.Get(ctx, "/onfarm/soil_moisture", q, &readings)
func (c *Client) Get(ctx context.Context, path string, q Query, dst any) error {
	resp, err := c.GetRaw(ctx, path, q)
	if err != nil {
		return err
	}
	if err := resp.ToError(); err != nil {
		return err
	}
	return resp.Unmarshal(dst)
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return c.transport.Close()
}
