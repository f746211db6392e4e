// Package pretty renders JSON values as indented, human-readable text.
package pretty

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// ErrTrailingData is returned by Decode when input continues after the first value.
var ErrTrailingData = errors.New("unexpected data after top-level JSON value")

type printer struct {
	indent int
}

// Option configures printing.
type Option func(*printer)

// WithIndent sets the spaces per nesting level. Zero prints compact JSON.
func WithIndent(n int) Option {
	return func(p *printer) {
		if n < 0 {
			n = 0
		}
		p.indent = n
	}
}

// Decode parses data into a generic JSON value.
// Numbers decode as json.Number so they re-render unchanged.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

// Fprint writes v to w followed by a newline.
// Object keys are sorted and every level is indented by the same width.
func Fprint(w io.Writer, v any, opts ...Option) error {
	p := &printer{indent: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", p.indent))
	return enc.Encode(v)
}

// Sprint returns v rendered as by Fprint, without the trailing newline.
func Sprint(v any, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, v, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
