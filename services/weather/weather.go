// Package weather provides a client for the PSA weather endpoints.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	psa "github.com/precisionsustainableag/psa-go"
)

// AveragesPath is the climate normals endpoint relative to the API base URL.
const AveragesPath = "/weather/averages"

// DateLayout is the date format the weather endpoints accept.
const DateLayout = "2006-01-02"

var (
	ErrInvalidLocation = errors.New("weather: latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrInvalidRange    = errors.New("weather: start and end dates are required and start must not be after end")
)

// WeatherClient defines the interface for Weather operations.
// Implement this interface for testing with mocks.
type WeatherClient interface {
	Averages(ctx context.Context, q AveragesQuery) (any, error)
}

// Client is a Weather service client.
type Client struct {
	client psa.Querier
}

// NewClient creates a new Weather client.
func NewClient(c psa.Querier) *Client {
	return &Client{client: c}
}

// Ensure Client implements WeatherClient.
var _ WeatherClient = (*Client)(nil)

// AveragesQuery selects climate normals for a location and date range.
type AveragesQuery struct {
	Lat   float64
	Lon   float64
	Start time.Time
	End   time.Time
}

// Validate checks the coordinates and date range.
func (q AveragesQuery) Validate() error {
	if q.Lat < -90 || q.Lat > 90 || q.Lon < -180 || q.Lon > 180 {
		return ErrInvalidLocation
	}
	if q.Start.IsZero() || q.End.IsZero() || q.Start.After(q.End) {
		return ErrInvalidRange
	}
	return nil
}

// Params encodes q as lat, lon, start, end, output.
func (q AveragesQuery) Params() psa.Query {
	return psa.Query{
		{Key: "lat", Value: strconv.FormatFloat(q.Lat, 'f', -1, 64)},
		{Key: "lon", Value: strconv.FormatFloat(q.Lon, 'f', -1, 64)},
		{Key: "start", Value: q.Start.Format(DateLayout)},
		{Key: "end", Value: q.End.Format(DateLayout)},
		{Key: "output", Value: "json"},
	}
}

// Averages retrieves climate normals.
//
// Example:
//
//	start, _ := time.Parse(weather.DateLayout, "2021-05-01")
//	end, _ := time.Parse(weather.DateLayout, "2021-06-01")
//	normals, err := wxClient.Averages(ctx, weather.AveragesQuery{
//	    Lat: 39.03, Lon: -76.87, Start: start, End: end,
//	})
func (c *Client) Averages(ctx context.Context, q AveragesQuery) (any, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	var v any
	if err := c.client.Get(ctx, AveragesPath, q.Params(), &v); err != nil {
		return nil, fmt.Errorf("weather averages: %w", err)
	}
	return v, nil
}
