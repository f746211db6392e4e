package psa

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/precisionsustainableag/psa-go/transport"
)

// DefaultBaseURL is the public PSA API endpoint.
const DefaultBaseURL = "https://api.precisionsustainableag.org"

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds client configuration.
type clientConfig struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	transport  transport.Transport
	logger     *zap.Logger
}

// defaultConfig returns the default client configuration.
// No timeout is set: a request blocks until it completes or its context ends.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
	}
}

// WithAPIKey sets the API key sent in the x-api-key header.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithBaseURL sets the API endpoint (default: "https://api.precisionsustainableag.org").
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the request timeout (default: none).
// Ignored when WithHTTPClient or WithTransport is used.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTransport replaces the HTTP transport entirely.
// Mostly useful for tests that need to fake the network layer.
func WithTransport(t transport.Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithLogger sets the logger used for request tracing (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
