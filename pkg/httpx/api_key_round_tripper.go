package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper injects a static API key into the Authorization header
// of every outgoing request. Getgems expects the raw key, not a Bearer
// scheme.
type APIKeyRoundTripper struct {
	next   http.RoundTripper
	apiKey string
}

func NewAPIKeyRoundTripper(next http.RoundTripper, apiKey string) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:   next,
		apiKey: apiKey,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", rt.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
