package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment names accepted in Config.Env.
const (
	Development = "development"
	Production  = "production"
)

// Environment variables read by FromEnv.
const (
	EnvConfigFile = "ALGOKIT_CONFIG"
	EnvCases      = "ALGOKIT_CASES"
	EnvWorkers    = "ALGOKIT_WORKERS"
	EnvLogLevel   = "ALGOKIT_LOG_LEVEL"
	EnvEnv        = "ALGOKIT_ENV"
	EnvFailFast   = "ALGOKIT_FAIL_FAST"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the runner configuration.
type Config struct {
	// CasesPath is the HCL file holding the cases to run.
	CasesPath string `yaml:"cases" validate:"required"`
	// Workers bounds how many cases run at once.
	Workers int `yaml:"workers" validate:"min=1,max=1024"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Env selects the logger preset: development or production.
	Env string `yaml:"env" validate:"oneof=development production"`
	// FailFast stops the batch at the first solver error.
	FailFast bool `yaml:"fail_fast"`
}

var validate = validator.New()

// Default returns the built-in configuration. CasesPath has no default.
func Default() Config {
	return Config{
		Workers:  4,
		LogLevel: "info",
		Env:      Development,
	}
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from the
// file keep their current values; an empty file changes nothing.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// FromEnv overlays the ALGOKIT_* environment variables onto cfg.
// Unset or unparsable values keep the current setting.
func FromEnv(cfg *Config) {
	cfg.CasesPath = getEnv(EnvCases, cfg.CasesPath)
	cfg.Workers = getEnvInt(EnvWorkers, cfg.Workers)
	cfg.LogLevel = strings.ToLower(getEnv(EnvLogLevel, cfg.LogLevel))
	cfg.Env = strings.ToLower(getEnv(EnvEnv, cfg.Env))
	cfg.FailFast = getEnvBool(EnvFailFast, cfg.FailFast)
}

// Validate checks the struct tags and reports every violation at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
