// Package config loads runtime settings for the patterns binary.
//
// Settings come from defaults, an optional YAML file and PATTERNS_* environment
// variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// HTTPConfig configures the web front end.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`                         // Listen address, e.g. ":8080"
	Mode            string        `mapstructure:"mode" yaml:"mode"`                         // gin mode: debug, release or test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"` // Grace period for in-flight requests
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// Config wraps the whole configuration.
type Config struct {
	HTTP HTTPConfig `mapstructure:"http" yaml:"http"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
}

var (
	defaults = map[string]any{
		"http.addr":             ":8080",
		"http.mode":             "release",
		"http.shutdown_timeout": 10 * time.Second,
		"log.level":             "info",
	}

	envBindings = map[string][]string{
		"http.addr":             {"PATTERNS_HTTP_ADDR"},
		"http.mode":             {"PATTERNS_HTTP_MODE"},
		"http.shutdown_timeout": {"PATTERNS_HTTP_SHUTDOWN_TIMEOUT"},
		"log.level":             {"PATTERNS_LOG_LEVEL"},
	}

	validModes  = []string{"debug", "release", "test"}
	validLevels = []string{"debug", "info", "warn", "error"}
)

// Load reads filePath when it exists and applies env overrides on top.
// An empty filePath loads defaults and env only.
func Load(filePath string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := bindEnvs(v); err != nil {
		return Config{}, err
	}

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", filePath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("config: http.addr must not be empty")
	}
	if !slices.Contains(validModes, c.HTTP.Mode) {
		return fmt.Errorf("config: http.mode %q must be one of %v", c.HTTP.Mode, validModes)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("config: http.shutdown_timeout must be > 0")
	}
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("config: log.level %q must be one of %v", c.Log.Level, validLevels)
	}
	return nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}
