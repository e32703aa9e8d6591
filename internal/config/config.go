package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API  APIConfig  `mapstructure:"api"`
	Idle IdleConfig `mapstructure:"idle"`
	UI   UIConfig   `mapstructure:"ui"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Demo switches the app to the built-in seeded fetcher so the
	// dashboard works with no backend running.
	Demo bool `mapstructure:"demo"`
}

// IdleConfig holds the simulation idle-reset settings.
type IdleConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix PAINTFLOW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("api.demo", false)
	v.SetDefault("idle.timeout", "5m")
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.date_format", "02 Jan")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAINTFLOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "paintflow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAINTFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Idle.Timeout <= 0 {
		c.Idle.Timeout = 5 * time.Minute
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Honors the same PAINTFLOW_CONFIG override as Load.
func Save(cfg Config) error {
	path := os.Getenv("PAINTFLOW_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "paintflow", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.demo", cfg.API.Demo)
	v.Set("idle.timeout", cfg.Idle.Timeout.String())
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
