// Package config loads CLI and server settings from a YAML file, the
// environment and defaults, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	View   ViewConfig   `mapstructure:"view"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig tunes the simulation.
type EngineConfig struct {
	StepLimit int    `mapstructure:"step_limit"`
	Table     string `mapstructure:"table"` // path to a YAML table; empty means the built-in one
}

// ViewConfig controls how transcripts are printed.
type ViewConfig struct {
	Mode   string `mapstructure:"mode"`
	Window int    `mapstructure:"window"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// StoreConfig selects where runs are kept.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Dir     string      `mapstructure:"dir"` // file backend
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds redis settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error; empty means the command default
	File  string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// TURING_ (e.g. TURING_ENGINE_STEP_LIMIT).
//
// path, when set, must exist. Otherwise TURING_CONFIG or
// $HOME/.config/turing/config.yaml is read if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("engine.step_limit", domain.DefaultStepLimit)
	v.SetDefault("engine.table", "")
	v.SetDefault("view.mode", "full")
	v.SetDefault("view.window", 3)
	v.SetDefault("server.port", 8080)
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.dir", ".turing/runs")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "turing:run:")
	v.SetDefault("store.redis.ttl", time.Duration(0))
	v.SetDefault("log.level", "") // empty: each command picks its own default
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TURING_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "turing"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TURING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if c.Engine.StepLimit <= 0 {
		return fmt.Errorf("engine.step_limit must be positive, got %d", c.Engine.StepLimit)
	}
	switch c.View.Mode {
	case "full", "window":
	default:
		return fmt.Errorf("view.mode must be full or window, got %q", c.View.Mode)
	}
	if c.View.Window <= 0 {
		return fmt.Errorf("view.window must be positive, got %d", c.View.Window)
	}
	switch c.Store.Backend {
	case "memory", "file", "redis", "none":
	default:
		return fmt.Errorf("store.backend must be memory, file, redis or none, got %q", c.Store.Backend)
	}
	return nil
}
