package app

import (
	"github.com/dmitrymomot/ipecho/pkg/config"
	"github.com/dmitrymomot/ipecho/pkg/httpserver"
)

// Config is the service configuration read from the environment.
type Config struct {
	Name string `env:"APP_NAME" envDefault:"ipecho"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	// LogLevel and LogFormat override the environment defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config
}

// LoadConfig loads envFiles, if any, and parses Config from the
// environment.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
