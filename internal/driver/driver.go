// Package driver runs the fetch-and-print flow: one soil moisture request,
// a status line, then the pretty-printed JSON body.
package driver

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	psa "github.com/precisionsustainableag/psa-go"
	"github.com/precisionsustainableag/psa-go/pretty"
	"github.com/precisionsustainableag/psa-go/services/soilmoisture"
)

// FarmCode is the farm whose readings are fetched.
const FarmCode = "KTA"

// DefaultQuery is the request the driver sends.
var DefaultQuery = soilmoisture.Query{Type: soilmoisture.TypeTDR, Code: FarmCode}

// Fetcher performs the raw soil moisture request.
type Fetcher interface {
	FetchRaw(ctx context.Context, q soilmoisture.Query) (*psa.Response, error)
}

// Driver performs the request and prints the outcome.
type Driver struct {
	fetcher Fetcher
	out     io.Writer
	logger  *zap.Logger
	indent  int
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver logger (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithIndent sets the pretty-print indent width.
func WithIndent(n int) Option {
	return func(d *Driver) {
		d.indent = n
	}
}

// New creates a driver that writes to out.
func New(fetcher Fetcher, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		fetcher: fetcher,
		out:     out,
		logger:  zap.NewNop(),
		indent:  pretty.DefaultIndent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the request once. The status line is always printed once a
// response arrives; the body is parsed as JSON regardless of the status.
func (d *Driver) Run(ctx context.Context) error {
	resp, err := d.fetcher.FetchRaw(ctx, DefaultQuery)
	if err != nil {
		return fmt.Errorf("fetch soil moisture: %w", err)
	}

	if _, err := fmt.Fprintf(d.out, "Request returned %d : '%s'\n", resp.StatusCode, resp.Reason); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	if !resp.IsSuccess() {
		d.logger.Warn("non-success status, parsing body anyway",
			zap.Int("status", resp.StatusCode),
			zap.String("url", resp.URL))
	}

	payload, err := resp.JSON()
	if err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	if err := pretty.Fprint(d.out, payload, pretty.WithIndent(d.indent)); err != nil {
		return fmt.Errorf("print response: %w", err)
	}
	return nil
}
