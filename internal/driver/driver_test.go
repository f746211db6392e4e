package driver

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	psa "github.com/precisionsustainableag/psa-go"
	"github.com/precisionsustainableag/psa-go/services/soilmoisture"
	"github.com/precisionsustainableag/psa-go/transport"
)

type DriverSuite struct {
	suite.Suite

	out      bytes.Buffer
	requests []*transport.Request
	resp     *transport.Response
	err      error
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func (s *DriverSuite) SetupTest() {
	s.out.Reset()
	s.requests = nil
	s.resp = nil
	s.err = nil
}

func (s *DriverSuite) respond(status int, body string) {
	s.resp = &transport.Response{
		StatusCode: status,
		Reason:     http.StatusText(status),
		Body:       []byte(body),
	}
}

func (s *DriverSuite) run(opts ...Option) error {
	fake := transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		s.requests = append(s.requests, req)
		return s.resp, s.err
	})
	client, err := psa.New(psa.WithAPIKey("YOUR_API_KEY"), psa.WithTransport(fake))
	s.Require().NoError(err)

	return New(soilmoisture.NewClient(client), &s.out, opts...).Run(context.Background())
}

func (s *DriverSuite) TestPrintsStatusAndJSON() {
	s.respond(http.StatusOK, `{"a": 1}`)

	s.Require().NoError(s.run())
	s.Equal("Request returned 200 : 'OK'\n{\n  \"a\": 1\n}\n", s.out.String())
}

func (s *DriverSuite) TestSendsOneRequest() {
	s.respond(http.StatusOK, `[]`)

	s.Require().NoError(s.run())
	s.Require().Len(s.requests, 1)

	req := s.requests[0]
	s.Equal(http.MethodGet, req.Method)
	s.Equal("https://api.precisionsustainableag.org/onfarm/soil_moisture?type=tdr&code=KTA&output=json", req.URL)
	s.Len(req.Header, 1)
	s.Equal("YOUR_API_KEY", req.Header.Get("x-api-key"))
}

func (s *DriverSuite) TestTransportErrorPrintsNothing() {
	s.err = errors.New("dial tcp: lookup api.precisionsustainableag.org: no such host")

	err := s.run()
	s.ErrorIs(err, s.err)
	s.Empty(s.out.String())
}

func (s *DriverSuite) TestEmptyBodyFailsAfterStatusLine() {
	s.respond(http.StatusOK, "")

	err := s.run()
	s.ErrorIs(err, psa.ErrInvalidJSON)
	s.Equal("Request returned 200 : 'OK'\n", s.out.String())
}

func (s *DriverSuite) TestErrorStatusStillParsesBody() {
	s.respond(http.StatusNotFound, "Not Found")

	err := s.run()
	s.ErrorIs(err, psa.ErrInvalidJSON)
	s.Equal("Request returned 404 : 'Not Found'\n", s.out.String())
}

func (s *DriverSuite) TestErrorStatusWithJSONBodyIsPrinted() {
	s.respond(http.StatusForbidden, `{"message": "Forbidden"}`)

	s.Require().NoError(s.run())
	s.Equal("Request returned 403 : 'Forbidden'\n{\n  \"message\": \"Forbidden\"\n}\n", s.out.String())
}

func (s *DriverSuite) TestNestedIndentIsUniform() {
	s.respond(http.StatusOK, `{"x": {"y": 2}}`)

	s.Require().NoError(s.run(WithIndent(1)))
	s.Equal("Request returned 200 : 'OK'\n{\n \"x\": {\n  \"y\": 2\n }\n}\n", s.out.String())
}
