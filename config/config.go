// Package config loads runtime settings from an optional config file and
// environment variables. Simulation tuning lives in parameter; this covers
// only deployment concerns: world size, logging, audio and the leaderboard
// backend.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/stardrift/parameter"
)

// Config is the full runtime configuration
type Config struct {
	World  WorldConfig  `mapstructure:"world"`
	Log    LogConfig    `mapstructure:"log"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Player PlayerConfig `mapstructure:"player"`
}

// WorldConfig sizes the play field
type WorldConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LogConfig controls the structured log output
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// AudioConfig toggles synthesized sound
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RedisConfig points at the optional leaderboard backend
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port dial string
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PlayerConfig names the pilot for score submission
type PlayerConfig struct {
	Name string `mapstructure:"name"`
}

// Load reads configuration from path (optional, empty means defaults) with
// STARDRIFT_-prefixed environment overrides
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("world.width", parameter.DefaultWorldWidth)
	v.SetDefault("world.height", parameter.DefaultWorldHeight)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "stardrift.log")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("player.name", "pilot")

	v.SetEnvPrefix("STARDRIFT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return nil, fmt.Errorf("invalid world size %vx%v", cfg.World.Width, cfg.World.Height)
	}
	return &cfg, nil
}
