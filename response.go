package psa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/precisionsustainableag/psa-go/pretty"
)

// Response represents a PSA API response.
type Response struct {
	URL        string      // Requested URL
	StatusCode int         // HTTP status code (e.g., 200)
	Reason     string      // Reason phrase (e.g., "OK")
	Header     http.Header // Response headers
	Body       []byte      // Raw body
}

// IsSuccess returns true for 2xx responses.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON parses the body into a generic JSON value.
// Numbers are kept as json.Number so they print exactly as received.
func (r *Response) JSON() (any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, ErrEmptyBody
	}
	v, err := pretty.Decode(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return v, nil
}

// Unmarshal decodes the JSON body into v.
func (r *Response) Unmarshal(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// String returns the raw body as a string.
func (r *Response) String() string {
	return string(r.Body)
}

// ToError converts the response to an error if it indicates failure.
func (r *Response) ToError() error {
	if r.IsSuccess() {
		return nil
	}
	return errorFromStatus(r.StatusCode, r.Reason, r.Body)
}
