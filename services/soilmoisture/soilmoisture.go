// Package soilmoisture provides a client for the PSA on-farm soil moisture endpoint.
package soilmoisture

import (
	"context"
	"errors"

	psa "github.com/precisionsustainableag/psa-go"
)

// Path is the soil moisture endpoint relative to the API base URL.
const Path = "/onfarm/soil_moisture"

// TypeTDR selects time-domain reflectometry sensors.
const TypeTDR = "tdr"

// ErrMissingCode is returned when no farm code is given.
var ErrMissingCode = errors.New("soilmoisture: farm code is required")

// SoilMoistureClient defines the interface for soil moisture operations.
// Implement this interface for testing with mocks.
type SoilMoistureClient interface {
	Fetch(ctx context.Context, q Query) (any, error)
	FetchRaw(ctx context.Context, q Query) (*psa.Response, error)
}

// Client is a soil moisture service client.
type Client struct {
	client psa.Querier
}

// NewClient creates a new soil moisture client.
func NewClient(c psa.Querier) *Client {
	return &Client{client: c}
}

// Ensure Client implements SoilMoistureClient.
var _ SoilMoistureClient = (*Client)(nil)

// Query selects the readings to fetch.
type Query struct {
	Type string // Sensor type, TypeTDR when empty
	Code string // Three-letter farm code, e.g. "KTA"
}

// Params encodes q in the order the endpoint documents: type, code, output.
func (q Query) Params() psa.Query {
	typ := q.Type
	if typ == "" {
		typ = TypeTDR
	}
	return psa.Query{
		{Key: "type", Value: typ},
		{Key: "code", Value: q.Code},
		{Key: "output", Value: "json"},
	}
}

// FetchRaw performs the request and returns the response without checking its status.
//
// Example:
//
//	resp, err := smClient.FetchRaw(ctx, soilmoisture.Query{Code: "KTA"})
//	fmt.Printf("Request returned %d : '%s'\n", resp.StatusCode, resp.Reason)
func (c *Client) FetchRaw(ctx context.Context, q Query) (*psa.Response, error) {
	if q.Code == "" {
		return nil, ErrMissingCode
	}
	return c.client.GetRaw(ctx, Path, q.Params())
}

// Fetch retrieves readings as a generic JSON value.
func (c *Client) Fetch(ctx context.Context, q Query) (any, error) {
	if q.Code == "" {
		return nil, ErrMissingCode
	}
	var v any
	if err := c.client.Get(ctx, Path, q.Params(), &v); err != nil {
		return nil, err
	}
	return v, nil
}
