// Package transport provides the network layer used by the PSA client.
package transport

import (
	"context"
	"net/http"
)

// Transport defines the interface for sending a single API request.
type Transport interface {
	// Name returns the transport name (e.g., "http").
	Name() string

	// RoundTrip sends the request and returns the fully read response.
	RoundTrip(ctx context.Context, req *Request) (*Response, error)

	// IsEncrypted returns true if requests travel over TLS.
	IsEncrypted() bool

	// Close releases any resources held by the transport.
	Close() error
}

// Request represents an outbound API request.
type Request struct {
	Method string      // HTTP method, GET when empty
	URL    string      // Absolute URL including the query string
	Header http.Header // Headers to send
}

// Response represents a received API response.
type Response struct {
	StatusCode int         // HTTP status code
	Reason     string      // Reason phrase without the status code
	Header     http.Header // Response headers
	Body       []byte      // Raw body
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

func (f Func) Name() string { return "func" }

func (f Func) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

func (f Func) IsEncrypted() bool { return false }

func (f Func) Close() error { return nil }
