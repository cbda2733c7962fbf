package main

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-sortedmap/sortable"
	"github.com/amp-labs/amp-sortedmap/sortedmap"
	"github.com/caarlos0/env/v7"
)

// environment is the configuration kept in the environment.
type environment struct {
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stderr"`

	Order sortable.Order `env:"SORTEDMAP_ORDER" envDefault:"ordinal"`
	Fold  sortedmap.Fold `env:"SORTEDMAP_FOLD" envDefault:"lower"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	IgnoreCase bool `env:"SORTEDMAP_IGNORE_CASE" envDefault:"true"`
	LogJSON    bool `env:"LOG_JSON" envDefault:"false"`
}

// parseEnvironment reads the configuration from environ, or from the process
// environment when environ is nil.
func parseEnvironment(environ map[string]string) (envs *environment, err error) {
	envs = &environment{}

	if environ == nil {
		err = env.Parse(envs)
	} else {
		err = env.Parse(envs, env.Options{Environment: environ})
	}

	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return envs, nil
}

// mapOptions returns the sortedmap options selected by the environment.
func (envs *environment) mapOptions(l *slog.Logger) []sortedmap.Option {
	return []sortedmap.Option{
		sortedmap.WithIgnoreCase(envs.IgnoreCase),
		sortedmap.WithFold(envs.Fold),
		sortedmap.WithOrder(envs.Order),
		sortedmap.WithLogger(l),
	}
}
