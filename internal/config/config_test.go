package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tore489/getgems-bot/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TG_TOKEN", "123456:AAH-test")
	t.Setenv("GETGEMS_API_KEY", "gg-test-key")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("123456:AAH-test", cfg.Bot.Token)
	rq.Equal("gg-test-key", cfg.Getgems.APIKey)
	rq.Equal("https://api.getgems.io/public-api", cfg.Getgems.BaseURL)
	rq.Equal(10*time.Second, cfg.Getgems.Timeout)
	rq.Equal(2*time.Second, cfg.Monitor.Interval)
	rq.Equal(3*time.Second, cfg.Monitor.InitialDelay)
	rq.False(cfg.Webhook.Enabled())
	rq.Equal(":10000", cfg.Webhook.ListenAddress())
	rq.Equal(":8081", cfg.Observability.ProbeAddress)
	rq.Equal(":9090", cfg.Observability.MetricsAddress)
}

func TestLoadWebhookMode(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TG_TOKEN", "123456:AAH-test")
	t.Setenv("GETGEMS_API_KEY", "gg-test-key")
	t.Setenv("PUBLIC_URL", "https://getgems-bot.onrender.com")
	t.Setenv("PORT", "8000")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.True(cfg.Webhook.Enabled())
	rq.Equal(":8000", cfg.Webhook.ListenAddress())
}

func TestLoadMissingCredentials(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		envs map[string]string
	}{
		{
			name: "No bot token",
			envs: map[string]string{"GETGEMS_API_KEY": "gg-test-key"},
		},
		{
			name: "No API key",
			envs: map[string]string{"TG_TOKEN": "123456:AAH-test"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			rq.Error(err)
		})
	}
}

func TestLoadInvalidPublicURL(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TG_TOKEN", "123456:AAH-test")
	t.Setenv("GETGEMS_API_KEY", "gg-test-key")
	t.Setenv("PUBLIC_URL", "not a url")

	_, err := config.Load()
	rq.Error(err)
}
