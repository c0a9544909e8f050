package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
	"github.com/amirhossein-jamali/waitbar/internal/domain/port/core"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the loader
const EnvPrefix = "WAITBAR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"$HOME/.config/waitbar",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by WAITBAR_ENV.
// Config and .env files are optional; defaults cover every key.
func LoadConfig() (*Config, error) {
	return load(ConfigPaths, DotEnvPaths)
}

func load(configPaths, dotEnvPaths []string) (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(dotEnvPaths); err != nil {
		return nil, err
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range configPaths {
		v.AddConfigPath(os.ExpandEnv(path))
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. A missing file is fine,
// a file that exists but cannot be parsed is not.
func loadDotEnvFile(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", filepath.Clean(path), err)
		}
		return nil
	}
	return nil
}

// setDefaults sets the value of every key used by the application
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")

	v.SetDefault("wait.refreshIntervalMs", 500)

	v.SetDefault("progress.style", "auto")
}

// getEnvironment determines the environment to use based on WAITBAR_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the short environment variable names on top of
// the config file
func processEnvOverrides(v *viper.Viper) {
	if logLevel := os.Getenv(EnvPrefix + "_LOG_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if logFormat := os.Getenv(EnvPrefix + "_LOG_FORMAT"); logFormat != "" {
		v.Set("logger.format", logFormat)
	}
	if interval := getEnvInt(EnvPrefix+"_REFRESH_INTERVAL_MS", 0); interval != 0 {
		v.Set("wait.refreshIntervalMs", interval)
	}
	if style := os.Getenv(EnvPrefix + "_PROGRESS_STYLE"); style != "" {
		v.Set("progress.style", style)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// maxRefreshIntervalMs is the largest millisecond count that fits in a time.Duration
const maxRefreshIntervalMs = math.MaxInt64 / int64(time.Millisecond)

// processDurations converts raw millisecond values to durations
func processDurations(config *Config) {
	config.Wait.RefreshInterval = time.Duration(config.Wait.RefreshIntervalMs) * time.Millisecond
}

// Validate checks that every value is usable
func Validate(cfg *Config) error {
	switch cfg.Environment {
	case Development, Production, Test:
	default:
		return errs.NewConfigError("environment", cfg.Environment,
			fmt.Sprintf("must be one of %s, %s, %s", Development, Production, Test))
	}

	if _, err := core.ParseLogLevel(cfg.Logger.Level); err != nil {
		return errs.NewConfigError("logger.level", cfg.Logger.Level, err.Error())
	}

	switch cfg.Logger.Format {
	case "console", "json":
	default:
		return errs.NewConfigError("logger.format", cfg.Logger.Format, "must be console or json")
	}

	if cfg.Wait.RefreshIntervalMs <= 0 {
		return errs.NewConfigError("wait.refreshIntervalMs", cfg.Wait.RefreshIntervalMs, "must be positive")
	}
	if cfg.Wait.RefreshIntervalMs > maxRefreshIntervalMs {
		return errs.NewConfigError("wait.refreshIntervalMs", cfg.Wait.RefreshIntervalMs, "is too large")
	}

	switch cfg.Progress.Style {
	case "auto", "bar", "line":
	default:
		return errs.NewConfigError("progress.style", cfg.Progress.Style, "must be one of auto, bar, line")
	}

	return nil
}

// JSONLogs reports whether logs should use the production JSON encoder
func (c *Config) JSONLogs() bool {
	return c.Logger.Format == "json" || c.Environment == Production
}
