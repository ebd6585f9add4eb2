package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tore489/getgems-bot/pkg/httpx"
)

func TestAPIKeyRoundTripper(t *testing.T) {
	rq := require.New(t)

	const testAPIKey = "gg-test-key"

	var gotAuth, gotAccept string

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer httpServer.Close()

	client := &http.Client{
		Transport: httpx.NewAPIKeyRoundTripper(http.DefaultTransport, testAPIKey),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, httpServer.URL, http.NoBody)
	rq.NoError(err)

	resp, err := client.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(testAPIKey, gotAuth)
	rq.Equal("application/json", gotAccept)
}
