package soilmoisture

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	psa "github.com/precisionsustainableag/psa-go"
	"github.com/precisionsustainableag/psa-go/transport"
)

type recordingTransport struct {
	requests []*transport.Request
	resp     *transport.Response
}

func (r *recordingTransport) RoundTrip(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	r.requests = append(r.requests, req)
	return r.resp, nil
}

func newClient(t *testing.T, status int, body string) (*Client, *recordingTransport) {
	t.Helper()
	rt := &recordingTransport{resp: &transport.Response{
		StatusCode: status,
		Reason:     http.StatusText(status),
		Body:       []byte(body),
	}}
	c, err := psa.New(psa.WithAPIKey("key"), psa.WithTransport(transport.Func(rt.RoundTrip)))
	require.NoError(t, err)
	return NewClient(c), rt
}

func TestQueryParams(t *testing.T) {
	assert.Equal(t, "?type=tdr&code=KTA&output=json", Query{Code: "KTA"}.Params().Encode())
	assert.Equal(t, "?type=tdr&code=ABC&output=json", Query{Type: TypeTDR, Code: "ABC"}.Params().Encode())
}

func TestFetchRaw(t *testing.T) {
	c, rt := newClient(t, http.StatusOK, `[{"vwc": 0.3}]`)

	resp, err := c.FetchRaw(context.Background(), Query{Code: "KTA"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, rt.requests, 1)
	assert.Equal(t,
		"https://api.precisionsustainableag.org/onfarm/soil_moisture?type=tdr&code=KTA&output=json",
		rt.requests[0].URL)
	assert.Equal(t, "key", rt.requests[0].Header.Get(psa.HeaderAPIKey))
}

func TestFetch(t *testing.T) {
	c, _ := newClient(t, http.StatusOK, `[{"vwc": 0.3}]`)

	v, err := c.Fetch(context.Background(), Query{Code: "KTA"})
	require.NoError(t, err)

	rows, ok := v.([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)
}

func TestFetchUnauthorized(t *testing.T) {
	c, _ := newClient(t, http.StatusForbidden, `{"message": "Forbidden"}`)

	_, err := c.Fetch(context.Background(), Query{Code: "KTA"})
	assert.True(t, psa.IsUnauthorized(err))
}

func TestMissingCode(t *testing.T) {
	c, rt := newClient(t, http.StatusOK, `{}`)

	_, err := c.FetchRaw(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrMissingCode)

	_, err = c.Fetch(context.Background(), Query{Type: TypeTDR})
	assert.ErrorIs(t, err, ErrMissingCode)

	assert.Empty(t, rt.requests)
}
