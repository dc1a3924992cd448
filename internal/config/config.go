// Package config provides configuration loading and validation for the ivec
// command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidLevel        = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidReportFormat = errors.New("invalid report format")
)

// Default configuration values.
const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultReportFormat = "table"
	defaultReportColor  = true
)

// envPrefix is prepended to every environment variable read by LoadConfig.
const envPrefix = "IVEC"

// flagKeys maps command line flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"format":     "report.format",
	"color":      "report.color",
}

// Config holds all configuration for the ivec command.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig holds configuration for the statistics report.
type ReportConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LoadConfig loads configuration from defaults, an optional YAML file,
// environment variables and finally any flags in flags that were set.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	// Set defaults.
	setDefaults(viperCfg)

	// Read config file.
	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("ivec")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	// Read environment variables.
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	if flags != nil {
		bindErr := bindFlags(viperCfg, flags)
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)

	viperCfg.SetDefault("report.format", defaultReportFormat)
	viperCfg.SetDefault("report.color", defaultReportColor)
}

// bindFlags binds the known flags present in flags to their keys.
func bindFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		err := viperCfg.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	return nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if _, err := parseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	switch config.Report.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReportFormat, config.Report.Format)
	}

	return nil
}
