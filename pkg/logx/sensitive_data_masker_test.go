package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tore489/getgems-bot/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Authorization header",
			input:  []byte("GET /v1/nfts HTTP/1.1\r\nAuthorization: gg-secret-key\r\nAccept: application/json\r\n"),
			output: []byte("GET /v1/nfts HTTP/1.1\r\nAuthorization: [MASKED]\r\nAccept: application/json\r\n"),
		},
		{
			name:   "Bot token in path",
			input:  []byte("POST /bot123456:AAHsomeBotToken-abc/sendMessage HTTP/1.1"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1"),
		},
		{
			name:   "API key JSON field",
			input:  []byte(`{"hello":"world","apiKey":"gg-secret-key"}`),
			output: []byte(`{"hello":"world","apiKey":"[MASKED]"}`),
		},
		{
			name:   "Snake case API key and token",
			input:  []byte(`{"api_key":"abc123","token":"123456:AAH"}`),
			output: []byte(`{"api_key":"[MASKED]","token":"[MASKED]"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
