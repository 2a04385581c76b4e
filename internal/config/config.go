// Package config holds the typed runtime configuration.
//
// Early versions read settings from ambient state all over the code base.
// Here the configuration is parsed once in main and passed explicitly to
// everything that needs it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config struct {
	DBFile           string        `env:"DB_FILE" envDefault:"data/gorm.db"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool          `env:"ENABLE_PPROF"`
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"insecure-dev-secret"`
	TokenLifetime    time.Duration `env:"TOKEN_LIFETIME" envDefault:"24h"`

	// WeekStart is the day a weekly budget period begins on.
	WeekStart string `env:"WEEK_START" envDefault:"sunday"`

	Email Email
	AMQP  AMQP
}

type Email struct {
	Endpoint string `env:"EMAIL_API_ENDPOINT"`
	APIKey   string `env:"EMAIL_API_KEY"`
	From     string `env:"EMAIL_FROM"`
}

type AMQP struct {
	URL      string `env:"AMQP_URL"`
	Exchange string `env:"AMQP_EXCHANGE" envDefault:"gastos"`
	Queue    string `env:"AMQP_ALERT_QUEUE" envDefault:"budget-alerts"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse reads the configuration from the environment.
func Parse() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	if _, ok := weekdays[strings.ToLower(cfg.WeekStart)]; !ok {
		return Config{}, fmt.Errorf("WEEK_START must be a weekday name, got %q", cfg.WeekStart)
	}

	return cfg, nil
}

// WeekStartDay returns the configured week start as a time.Weekday.
func (c Config) WeekStartDay() time.Weekday {
	return weekdays[strings.ToLower(c.WeekStart)]
}
