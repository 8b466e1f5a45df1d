// Package config defines the env-driven application configuration.
package config

import "time"

// API configures the finance backend client.
type API struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

// Rates configures the two external exchange-rate providers. The
// secondary source supplies the USD→EUR multiplier; when it is down the
// fallback constant is used instead so the board never blocks on it.
type Rates struct {
	PrimaryURL            string        `envconfig:"PRIMARY_URL" default:"https://api.hacienda.go.cr/indicadores/tc"`
	SecondaryURL          string        `envconfig:"SECONDARY_URL" default:"https://open.er-api.com/v6/latest/USD"`
	Timeout               time.Duration `envconfig:"TIMEOUT" default:"10s"`
	FallbackEURMultiplier float64       `envconfig:"FALLBACK_EUR_MULTIPLIER" default:"0.85"`
	CacheTTL              time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

// Log configures the styled slog handler.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[finanzas]"`
}

// App is the root configuration.
type App struct {
	Env   string `envconfig:"APP_ENV" default:"development"`
	API   API    `envconfig:"API"`
	Rates Rates  `envconfig:"RATES"`
	Log   Log    `envconfig:"LOG"`
}
