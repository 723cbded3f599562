package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LoggingConfig controls the zap logger.
// Level: debug, info, warn, error, fatal.
// Format: json or text. Output: stdout or file.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

type RateLimitConfig struct {
	QPS            int64 `mapstructure:"qps"`
	Burst          int64 `mapstructure:"burst"`
	MaxConcurrency int   `mapstructure:"max_concurrency"`
}

// AssistantConfig points at the upstream AI endpoint.
type AssistantConfig struct {
	UpstreamURL string        `mapstructure:"upstream_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SeedConfig toggles the demo dataset loaded at startup.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	v.SetDefault("server.port", 9000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("ratelimit.qps", 100)
	v.SetDefault("ratelimit.burst", 200)
	v.SetDefault("ratelimit.max_concurrency", 64)
	v.SetDefault("assistant.timeout", 30*time.Second)
	v.SetDefault("seed.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
