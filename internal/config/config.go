// Package config provides configuration management for undock-compose.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with UNDOCK_ prefix)
//   - .env files
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./undock.yaml, ~/.undock/config.yaml, /etc/undock/config.yaml)
//  3. .env files
//  4. Environment variables (UNDOCK_ prefix)
//
// # Usage Example
//
//	cfg, err := config.Load("undock.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Output name: %s\n", cfg.Convert.OutputName)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use UNDOCK_ prefix and underscores for nested keys:
//   - UNDOCK_CONVERT_OUTPUT_NAME=compose.yaml
//   - UNDOCK_CONVERT_INCLUDE_LABELS=true
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for undock-compose.
type Config struct {
	// Convert contains the conversion defaults
	Convert ConvertConfig `mapstructure:"convert"`
}

// ConvertConfig contains the conversion defaults. Command-line flags
// override these per invocation.
type ConvertConfig struct {
	// ComposeVersion is the version key emitted at the top of the output
	ComposeVersion string `mapstructure:"compose_version"`

	// OutputName is the output file name used when no output path is given
	OutputName string `mapstructure:"output_name"`

	// LabelPrefix is the namespace for metadata labels
	LabelPrefix string `mapstructure:"label_prefix"`

	// IncludeLabels emits template metadata as labels by default
	IncludeLabels bool `mapstructure:"include_labels"`

	// HostEnv appends the unRAID host environment variables by default
	HostEnv bool `mapstructure:"host_env"`

	// Timezone is the TZ value injected when host environment is enabled
	Timezone string `mapstructure:"timezone"`
}

var cfg *Config

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for undock.yaml in standard locations.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (UNDOCK_ prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("undock")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.undock")
		v.AddConfigPath("/etc/undock")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly specified file may legitimately not exist yet;
		// proceed with defaults in that case, fail on anything else.
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("UNDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("convert.compose_version", "3.7")
	v.SetDefault("convert.output_name", "docker-compose.yaml")
	v.SetDefault("convert.label_prefix", "net.unraid.docker")
	v.SetDefault("convert.include_labels", false)
	v.SetDefault("convert.host_env", false)
	v.SetDefault("convert.timezone", "UTC")
}

func validate(cfg *Config) error {
	if cfg.Convert.ComposeVersion == "" {
		return fmt.Errorf("convert compose_version is required")
	}

	if cfg.Convert.OutputName == "" {
		return fmt.Errorf("convert output_name is required")
	}

	if strings.ContainsAny(cfg.Convert.OutputName, `/\`) {
		return fmt.Errorf("convert output_name must be a bare file name, got %q", cfg.Convert.OutputName)
	}

	if cfg.Convert.LabelPrefix == "" {
		return fmt.Errorf("convert label_prefix is required")
	}

	return nil
}

func Get() *Config {
	return cfg
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
