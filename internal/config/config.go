// Package config loads the faop command settings from the environment, after reading an
// optional .env file from the working directory.
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse config")

type Config struct {
	LogLevel   string `env:"FAOP_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"FAOP_LOG_FORMAT" envDefault:"text"`
	Output     string `env:"FAOP_OUTPUT" envDefault:"json"`
	Union      string `env:"FAOP_UNION" envDefault:"product"`
	Epsilon    string `env:"FAOP_EPSILON" envDefault:"ε"`
	SinkPrefix string `env:"FAOP_SINK_PREFIX" envDefault:"sink"`
	Prune      bool   `env:"FAOP_PRUNE" envDefault:"false"`
}

// Load reads .env files (missing files are ignored) and parses the environment.
func Load(files ...string) (Config, error) {
	// the .env file is optional
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
