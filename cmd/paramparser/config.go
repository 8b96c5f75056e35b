package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/paramparser/pkg/environment"
	"github.com/dmitrymomot/paramparser/pkg/httpserver"
	"github.com/dmitrymomot/paramparser/pkg/logger"
	"github.com/dmitrymomot/paramparser/pkg/requestid"
)

const serviceName = "paramparser"

// appConfig is read from the environment and an optional .env file.
// Command line flags override it.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	SpecDir   string `env:"PARAMPARSER_SPEC_DIR" envDefault:"specs"`

	HTTP httpserver.Config
}

func (c appConfig) environment() environment.Environment {
	return environment.Parse(c.Env)
}

// newLogger builds the process logger. Level and format from the
// environment override the defaults of APP_ENV.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.environment(), serviceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}
