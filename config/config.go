package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"quickly image proxy"`

	// Upstream is the base URI originals are fetched from. http(s) upstreams
	// are proxied with a plain GET; s3://bucket[/prefix] upstreams are read
	// through the S3 API. Mandatory; startup checks it and exits.
	Upstream string `env:"QUICKLY_UPSTREAM"`

	Bind         string `env:"QUICKLY_BIND"`
	BindFallback string `env:"BIND" envDefault:"0.0.0.0:8787"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`

	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`

	S3Region    string `env:"S3_REGION"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
}

func New() *Config {
	conf := &Config{}

	if err := env.Parse(conf); err != nil {
		slog.Error(err.Error())

		panic("Failed to parse config")
	}

	return conf
}

// BindAddr resolves QUICKLY_BIND, falling back to BIND and its default.
func (c *Config) BindAddr() string {
	if c.Bind != "" {
		return c.Bind
	}
	return c.BindFallback
}
