// ============================================================================
// mathkit - Complex Number and Triangle Toolkit
// ============================================================================
//
// Package:     config
// Description: Application configuration for the mathkit command line tool
// Author:      msto63
// Created:     2025-08-03
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mathkit/foundation/core/errors"
	"github.com/msto63/mathkit/foundation/core/log"
)

// Environment variables read by LoadFromEnv and Load
const (
	EnvConfig    = "MATHKIT_CONFIG"
	EnvLogLevel  = "MATHKIT_LOG_LEVEL"
	EnvLogFormat = "MATHKIT_LOG_FORMAT"
	EnvPrecision = "MATHKIT_PRECISION"
	EnvPlain     = "MATHKIT_PLAIN"
)

// MaxPrecision is the largest number of fraction digits worth printing for a float64
const MaxPrecision = 17

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	// Precision is the number of fraction digits; -1 prints the shortest
	// representation that round-trips
	Precision int  `toml:"precision" yaml:"precision"`
	Plain     bool `toml:"plain" yaml:"plain"`
}

// Format is a configuration file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  log.DefaultLevel().String(),
			LogFormat: log.FormatText.String(),
		},
		Output: OutputConfig{
			Precision: -1,
		},
	}
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Environment overrides are applied on top of the file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigReadFailed(path, err)
	}

	cfg := Default()
	format := detectFormat(path)
	if err := decode(content, format, cfg); err != nil {
		return nil, errors.ConfigParseFailed(path, string(format), err)
	}

	return finish(cfg)
}

// LoadFromEnv loads the file named by MATHKIT_CONFIG, or the first default
// location that exists. Without any file the built-in defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return finish(Default())
}

func defaultPaths() []string {
	paths := []string{"./mathkit.toml", "./mathkit.yaml", "./mathkit.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mathkit", "config.toml"))
	}
	return paths
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		_, err := toml.Decode(string(content), cfg)
		return err
	}
}

// applyEnv overrides file values with MATHKIT_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.InvalidInput(errors.ModuleConfig, "env_"+strings.ToLower(EnvPrecision), v, "an integer")
		}
		c.Output.Precision = p
	}
	if v := os.Getenv(EnvPlain); v != "" {
		plain, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.InvalidInput(errors.ModuleConfig, "env_"+strings.ToLower(EnvPlain), v, "a boolean")
		}
		c.Output.Plain = plain
	}
	return nil
}

// applyDefaults fills settings that were set to an empty value
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = log.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = log.FormatText.String()
	}
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return errors.ValidationFailed(errors.ModuleConfig, "log_level", c.General.LogLevel, err.Error())
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return errors.ValidationFailed(errors.ModuleConfig, "log_format", c.General.LogFormat, err.Error())
	}
	if c.Output.Precision < -1 || c.Output.Precision > MaxPrecision {
		return errors.OutOfRange(errors.ModuleConfig, "precision", c.Output.Precision, -1, MaxPrecision)
	}
	return nil
}

// Level returns the parsed log level, falling back to the default
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		return log.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed log format, falling back to text
func (c *Config) LogFormat() log.Format {
	format, err := log.ParseFormat(c.General.LogFormat)
	if err != nil {
		return log.FormatText
	}
	return format
}
