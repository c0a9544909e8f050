package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Wait        WaitConfig     `mapstructure:"wait"`
	Progress    ProgressConfig `mapstructure:"progress"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// WaitConfig contains wait loop settings
type WaitConfig struct {
	RefreshIntervalMs int64 `mapstructure:"refreshIntervalMs"`

	// RefreshInterval is derived from RefreshIntervalMs after loading
	RefreshInterval time.Duration `mapstructure:"-"`
}

// ProgressConfig contains progress display settings
type ProgressConfig struct {
	Style string `mapstructure:"style"` // auto, bar or line
}
