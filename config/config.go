// Package config provides configuration loading and validation for amath.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidThreads   = errors.New("threads must not be negative")
	ErrInvalidPrecision = errors.New("precision must be between 0 and 17")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Default configuration values.
const (
	defaultThreads   = 0
	defaultPrecision = 6
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	maxPrecision     = 17
	envPrefix        = "AMATH"
)

// Config holds all configuration for amath.
type Config struct {
	Compute Compute       `mapstructure:"compute"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// Compute holds settings for the parallel kernels.
type Compute struct {
	// Threads is the worker count for transforms and densities.
	// Zero selects runtime.NumCPU().
	Threads int `mapstructure:"threads"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Precision int `mapstructure:"precision"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds settings for the Prometheus textfile export.
type MetricsConfig struct {
	// File is written in the Prometheus text format after each run when set.
	File string `mapstructure:"file"`
}

// Workers resolves the configured thread count, mapping 0 to the number of
// available CPUs.
func (c *Config) Workers() int {
	if c.Compute.Threads > 0 {
		return c.Compute.Threads
	}
	return runtime.NumCPU()
}

// Load loads configuration from file and environment variables. When
// configPath is empty, amath.yaml is looked up in the working directory and
// in $HOME/.config/amath; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	return LoadWith(viper.New(), configPath)
}

// LoadWith loads configuration into v, which callers may have bound to
// command-line flags beforehand.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("amath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/amath")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := Validate(&cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Compute: Compute{Threads: defaultThreads},
		Output:  OutputConfig{Precision: defaultPrecision},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("compute.threads", defaultThreads)
	v.SetDefault("output.precision", defaultPrecision)
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
	v.SetDefault("metrics.file", "")
}

// Validate checks cfg for out-of-range values.
func Validate(cfg *Config) error {
	if cfg.Compute.Threads < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreads, cfg.Compute.Threads)
	}

	if cfg.Output.Precision < 0 || cfg.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, cfg.Output.Precision)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Logging.Format)
	}

	return nil
}
