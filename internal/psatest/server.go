// Package psatest provides a fake PSA API server for tests.
package psatest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	psa "github.com/precisionsustainableag/psa-go"
	"github.com/precisionsustainableag/psa-go/security"
)

// Request is a request received by the fake server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// Server is an httptest server answering every path with a canned response.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	apiKey      string
	status      int
	contentType string
	body        []byte
	requests    []Request
}

// NewServer starts a fake server that answers 200 with an empty JSON object.
// The server is closed when the test ends.
func NewServer(tb testing.TB) *Server {
	s := &Server{
		status:      http.StatusOK,
		contentType: echo.MIMEApplicationJSON,
		body:        []byte("{}"),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Any("/*", s.handle)

	s.Server = httptest.NewServer(e)
	tb.Cleanup(s.Close)
	return s
}

// RequireAPIKey makes the server answer 403 unless x-api-key equals key.
func (s *Server) RequireAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// Respond sets the canned JSON response.
func (s *Server) Respond(status int, body string) {
	s.RespondWith(status, echo.MIMEApplicationJSON, body)
}

// RespondWith sets the canned response with an explicit content type.
func (s *Server) RespondWith(status int, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.contentType = contentType
	s.body = []byte(body)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handle(c echo.Context) error {
	r := c.Request()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
	})

	if s.apiKey != "" && !security.ConstantTimeEqual(r.Header.Get(psa.HeaderAPIKey), s.apiKey) {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden"})
	}
	return c.Blob(s.status, s.contentType, s.body)
}
