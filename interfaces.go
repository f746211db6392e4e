package psa

import "context"

// Querier provides read operations on the PSA API.
type Querier interface {
	// Get performs a GET request and decodes the JSON body into dst.
	Get(ctx context.Context, path string, q Query, dst any) error

	// GetRaw performs a GET request and returns the response without checking its status.
	GetRaw(ctx context.Context, path string, q Query) (*Response, error)
}

// Ensure Client implements Querier.
var _ Querier = (*Client)(nil)
