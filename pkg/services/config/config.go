// Package config loads the engine's service configuration. The engine
// itself keeps no persisted state; this only covers where the aggregation
// service lives and how exports are produced.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Aggregator struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Export struct {
	Dir     string `mapstructure:"dir"`
	FontDir string `mapstructure:"font_dir"`
}

type Images struct {
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server     Server     `mapstructure:"server"`
	Aggregator Aggregator `mapstructure:"aggregator"`
	Export     Export     `mapstructure:"export"`
	Images     Images     `mapstructure:"images"`
}

// Load reads the YAML config at path, with BOARD_ATLAS_* environment
// overrides and sensible defaults for everything optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("aggregator.timeout", 30*time.Second)
	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.font_dir", "fonts")
	v.SetDefault("images.concurrency", 4)
	v.SetDefault("images.timeout", 15*time.Second)

	v.SetEnvPrefix("BOARD_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Aggregator.BaseURL == "" {
		return nil, fmt.Errorf("aggregator.base_url is required")
	}
	return &cfg, nil
}
