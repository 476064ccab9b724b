// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every setting the program reads from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | console

	Port         string `env:"PORT" envDefault:"5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	CookieSecure bool   `env:"COOKIE_SECURE"`

	DBPath    string `env:"DB_PATH"`
	WordsFile string `env:"WORDS_FILE"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	JWTSecret         string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTTTL            time.Duration `env:"JWT_TTL" envDefault:"336h"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`

	AutoDelay time.Duration `env:"AUTO_DELAY" envDefault:"500ms"`
	Seed      uint64        `env:"SEED"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SetupLogging applies LogLevel and LogFormat to the global zerolog logger.
// An unknown level keeps zerolog's default.
func (c Config) SetupLogging() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
