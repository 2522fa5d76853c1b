package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every field can be set in
// the YAML file and overridden by the environment variable named in its tag.
type Config struct {
	// Environment selects logger defaults ("development" or "production").
	Environment string `env:"ENVIRONMENT" env-default:"development" validate:"oneof=development production" yaml:"environment"` //nolint: lll
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address and port the HTTP server listens on.
		Addr string `env:"HTTP_ADDR" env-default:":8000" validate:"required" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers.
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is how long keep-alive connections wait for the next request.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" validate:"gt=0" yaml:"requestTimeout"`
		// MaxHeaderBytes limits request header size; 0 means the net/http default.
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" validate:"gte=0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are exposed.
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" validate:"startswith=/" yaml:"metricsPath"`
		// PprofEnabled mounts net/http/pprof under /debug/pprof/.
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// Validation holds the inclusive bounds of the range rules.
	Validation struct {
		MinAge    int `env:"VALIDATION_MIN_AGE" env-default:"1" validate:"gte=0" yaml:"minAge"`
		MaxAge    int `env:"VALIDATION_MAX_AGE" env-default:"120" validate:"gtefield=MinAge" yaml:"maxAge"`
		MinHeight int `env:"VALIDATION_MIN_HEIGHT" env-default:"50" validate:"gte=0" yaml:"minHeight"`
		MaxHeight int `env:"VALIDATION_MAX_HEIGHT" env-default:"250" validate:"gtefield=MinHeight" yaml:"maxHeight"`
	} `yaml:"validation"`

	// GracefulShutdownTimeout bounds how long in-flight requests may take to finish on shutdown.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath, applies environment overrides and
// validates the result. A missing file is not an error: the configuration is
// then built from the environment and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if Exists(configPath) {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
