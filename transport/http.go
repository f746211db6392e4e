package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// HTTP implements Transport over net/http.
type HTTP struct {
	httpClient *http.Client
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.httpClient = client
	}
}

// NewHTTP creates a new HTTP transport.
// The default client has no timeout; cancel through the request context.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTP) Name() string { return "http" }

// IsEncrypted returns true; the PSA API is only served over https.
func (h *HTTP) IsEncrypted() bool { return true }

func (h *HTTP) Close() error {
	h.httpClient.CloseIdleConnections()
	return nil
}

// RoundTrip sends the request and reads the whole body.
func (h *HTTP) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     ReasonPhrase(resp.StatusCode, resp.Status),
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// ReasonPhrase extracts the reason from a status line such as "200 OK".
// Falls back to the standard text for the code when the server sent none.
func ReasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}
