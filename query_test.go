package psa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEncodeKeepsOrder(t *testing.T) {
	q := Query{
		{Key: "type", Value: "tdr"},
		{Key: "code", Value: "KTA"},
		{Key: "output", Value: "json"},
	}
	assert.Equal(t, "?type=tdr&code=KTA&output=json", q.Encode())
}

func TestQueryEncode(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"empty", nil, ""},
		{"single", Query{}.Add("output", "json"), "?output=json"},
		{"escaped", Query{}.Add("q", "a b&c"), "?q=a+b%26c"},
		{"repeated key", Query{}.Add("k", "1").Add("k", "2"), "?k=1&k=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Encode())
		})
	}
}

func TestQueryGet(t *testing.T) {
	q := Query{}.Add("code", "KTA").Add("code", "XYZ")

	v, ok := q.Get("code")
	assert.True(t, ok)
	assert.Equal(t, "KTA", v)

	_, ok = q.Get("type")
	assert.False(t, ok)
}

func TestJoinURL(t *testing.T) {
	q := Query{}.Add("output", "json")

	assert.Equal(t, "https://api.example.org/onfarm/soil_moisture?output=json",
		joinURL("https://api.example.org/", "/onfarm/soil_moisture", q))
	assert.Equal(t, "https://api.example.org/onfarm/soil_moisture",
		joinURL("https://api.example.org", "onfarm/soil_moisture", nil))
	assert.Equal(t, "https://api.example.org?output=json",
		joinURL("https://api.example.org", "", q))
}
