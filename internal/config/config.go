package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Bot           Bot
	Getgems       Getgems
	Monitor       Monitor
	Webhook       Webhook
	Observability Observability
}

type Bot struct {
	Token string `env:"TG_TOKEN,required" validate:"required"`
	// AdminID restricts bot commands to one user. Zero disables the guard.
	AdminID int64 `env:"BOT_ADMIN_ID"`
}

type Getgems struct {
	APIKey    string        `env:"GETGEMS_API_KEY,required" validate:"required"`
	BaseURL   string        `env:"GETGEMS_BASE_URL" envDefault:"https://api.getgems.io/public-api" validate:"url"`
	Timeout   time.Duration `env:"GETGEMS_TIMEOUT" envDefault:"10s"`
	HTTPDebug bool          `env:"GETGEMS_HTTP_DEBUG" envDefault:"false"`
}

type Monitor struct {
	Interval     time.Duration `env:"MONITOR_INTERVAL" envDefault:"2s" validate:"gt=0"`
	InitialDelay time.Duration `env:"MONITOR_INITIAL_DELAY" envDefault:"3s"`
}

// Webhook configures the webhook deployment mode. When PublicURL is empty
// the bot falls back to long polling and no port is exposed for updates.
type Webhook struct {
	PublicURL string `env:"PUBLIC_URL" validate:"omitempty,url"`
	Port      int    `env:"PORT" envDefault:"10000" validate:"gt=0,lte=65535"`
}

func (w Webhook) Enabled() bool {
	return w.PublicURL != ""
}

func (w Webhook) ListenAddress() string {
	return ":" + strconv.Itoa(w.Port)
}

type Observability struct {
	ProbeAddress   string `env:"PROBE_ADDRESS" envDefault:":8081"`
	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("validator.Struct: %w", err)
	}

	return config, nil
}
