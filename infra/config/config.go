package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Market    MarketConfig    `mapstructure:"market"`
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds the http server configuration.
type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

// MarketConfig holds the marketplace search configuration.
type MarketConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	MaxPages     int           `mapstructure:"max_pages"`
}

// OptimizerConfig holds the worker pool configuration.
type OptimizerConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

// StorageConfig holds the result persistence configuration.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DataDir string `mapstructure:"data_dir"`
}

// TelegramConfig holds the notification configuration.
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration from the given file and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PRICELAB")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 6080)
	v.SetDefault("server.debug", false)

	v.SetDefault("market.base_url", "http://localhost:8080")
	v.SetDefault("market.timeout", "30s")
	v.SetDefault("market.request_delay", "3s")
	v.SetDefault("market.max_pages", 25)

	v.SetDefault("optimizer.workers", 4)
	v.SetDefault("optimizer.queue_size", 32)

	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.data_dir", "./data")

	v.SetDefault("telegram.enabled", false)

	v.SetDefault("logging.level", "info")
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port, got %d", c.Server.Port)
	}
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if c.Market.MaxPages < 1 {
		return fmt.Errorf("market.max_pages must be at least 1")
	}
	if c.Optimizer.Workers < 1 {
		return fmt.Errorf("optimizer.workers must be at least 1")
	}
	if c.Optimizer.QueueSize < 1 {
		return fmt.Errorf("optimizer.queue_size must be at least 1")
	}
	if c.Storage.Enabled && c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required when storage is enabled")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}
