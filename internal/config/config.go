package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Upload  UploadConfig  `yaml:"upload" envconfig:"UPLOAD"`
	Listing ListingConfig `yaml:"listing" envconfig:"LISTING"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// UploadConfig bounds statement workbook uploads.
type UploadConfig struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes" envconfig:"MAX_SIZE_BYTES" default:"16777216" validate:"min=1"`
}

// ListingConfig configures the exchange-site company listing scraper.
type ListingConfig struct {
	URL      string        `yaml:"url" envconfig:"URL" default:"https://mse.mn/en/companies"`
	Headless bool          `yaml:"headless" envconfig:"HEADLESS" default:"true"`
	Timeout  time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"60s"`
}

// Load loads configuration from environment variables and an optional
// config.yaml in the working directory.
func Load() (*Config, error) {
	return LoadFrom("config.yaml")
}

// LoadFrom loads configuration with an explicit config file path. Env
// variables and struct defaults are processed first, then file values
// override where set.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(cfg, *fileCfg)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays file values onto the env/default base, field by
// field, skipping zero values in the overlay.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}
	if overlay.Server.ReadTimeout != 0 {
		merged.Server.ReadTimeout = overlay.Server.ReadTimeout
	}
	if overlay.Server.WriteTimeout != 0 {
		merged.Server.WriteTimeout = overlay.Server.WriteTimeout
	}
	if overlay.Server.IdleTimeout != 0 {
		merged.Server.IdleTimeout = overlay.Server.IdleTimeout
	}
	if overlay.Server.ShutdownTimeout != 0 {
		merged.Server.ShutdownTimeout = overlay.Server.ShutdownTimeout
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Output != "" {
		merged.Logging.Output = overlay.Logging.Output
	}
	if overlay.Logging.FilePath != "" {
		merged.Logging.FilePath = overlay.Logging.FilePath
	}

	if overlay.Upload.MaxSizeBytes != 0 {
		merged.Upload.MaxSizeBytes = overlay.Upload.MaxSizeBytes
	}

	if overlay.Listing.URL != "" {
		merged.Listing.URL = overlay.Listing.URL
	}
	if overlay.Listing.Timeout != 0 {
		merged.Listing.Timeout = overlay.Listing.Timeout
	}

	return merged
}
