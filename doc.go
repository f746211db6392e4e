// Package psa provides a Go client for the Precision Sustainable Ag (PSA) public API.
//
// The PSA API serves on-farm sensor data (soil moisture, water) and weather
// data over plain HTTPS GET requests authorized by an API key sent in the
// x-api-key header. Responses are JSON documents without a published schema.
//
// # Quick Start
//
//	client, err := psa.New(psa.WithAPIKey(os.Getenv("PSA_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.GetRaw(ctx, "/onfarm/soil_moisture", psa.Query{
//	    {Key: "type", Value: "tdr"},
//	    {Key: "code", Value: "KTA"},
//	    {Key: "output", Value: "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Request returned %d : '%s'\n", resp.StatusCode, resp.Reason)
//
// # Configuration
//
// Use functional options to configure the client:
//
//	client, err := psa.New(
//	    psa.WithAPIKey("your-api-key"),
//	    psa.WithTimeout(10*time.Second),
//	    psa.WithLogger(logger),
//	)
//
// # Raw and typed reads
//
// GetRaw performs exactly one request and never inspects the status code,
// so callers can report the status line before deciding what to do with the
// body. Get additionally converts non-2xx responses into *Error values and
// decodes the body into a destination value.
//
// # Error Handling
//
// Errors are typed and can be checked with errors.Is:
//
//	err := client.Get(ctx, path, query, &result)
//	if errors.Is(err, psa.ErrUnauthorized) {
//	    // Missing or wrong API key
//	}
//	if errors.Is(err, psa.ErrInvalidJSON) {
//	    // Body was not JSON
//	}
//
// # Thread Safety
//
// The Client is safe for concurrent use from multiple goroutines.
package psa
