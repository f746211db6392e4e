package psa

import (
	"net/url"
	"strings"
)

// Param is a single key=value query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters.
//
// Unlike url.Values, a Query keeps the order parameters were added in, so
// the encoded URL matches what the caller wrote.
type Query []Param

// Add returns q with key=value appended.
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Get returns the first value for key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders the query as "?k1=v1&k2=v2", or "" when q is empty.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// joinURL joins base and path with exactly one slash and appends the query.
func joinURL(base, path string, q Query) string {
	base = strings.TrimRight(base, "/")
	path = strings.TrimLeft(path, "/")
	if path != "" {
		base += "/" + path
	}
	return base + q.Encode()
}
