package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfig lists the TASKHUB_* variables. Unset variables leave the
// corresponding Config field untouched.
type EnvConfig struct {
	EndpointAddrGRPC string        `env:"TASKHUB_GRPC_ADDR"`
	EndpointAddrHTTP string        `env:"TASKHUB_HTTP_ADDR"`
	DatabaseDSN      string        `env:"TASKHUB_DATABASE_DSN"`
	SecretKey        string        `env:"TASKHUB_SECRET_KEY"`
	LogLevel         string        `env:"TASKHUB_LOG_LEVEL"`
	AllowedOrigins   []string      `env:"TASKHUB_ALLOWED_ORIGINS" env-separator:","`
	RequestTimeout   time.Duration `env:"TASKHUB_REQUEST_TIMEOUT"`
}

// dotenvFiles are loaded into the process environment if they exist.
var dotenvFiles = []string{".env"}

// parseEnv loads .env (when present) and overlays the environment.
func parseEnv(config *Config) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		panic(err)
	}

	e := &EnvConfig{}
	if err := cleanenv.ReadEnv(e); err != nil {
		panic(err)
	}
	e.apply(config)
}

func loadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (e *EnvConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.LogLevel, e.LogLevel)
	if len(e.AllowedOrigins) > 0 {
		config.AllowedOrigins = e.AllowedOrigins
	}
	if e.RequestTimeout > 0 {
		config.RequestTimeout = e.RequestTimeout
	}
}
