// Package config loads application settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Session SessionConfig
	Login   LoginConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// SessionConfig holds timing behavior for a logged-in session.
type SessionConfig struct {
	TimeoutSeconds   int `mapstructure:"timeout_seconds"`
	LoanDelaySeconds int `mapstructure:"loan_delay_seconds"`
}

// LoginConfig holds account-set initialization policy.
type LoginConfig struct {
	CollisionPolicy string `mapstructure:"collision_policy"`
}

// Load reads configuration from file and env. Env var overrides use prefix BANKIST_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.currency_symbol", "€")
	v.SetDefault("session.timeout_seconds", 300)
	v.SetDefault("session.loan_delay_seconds", 3)
	v.SetDefault("login.collision_policy", "warn")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BANKIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bankist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BANKIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("BANKIST_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "bankist", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("session.timeout_seconds", cfg.Session.TimeoutSeconds)
	v.Set("session.loan_delay_seconds", cfg.Session.LoanDelaySeconds)
	v.Set("login.collision_policy", cfg.Login.CollisionPolicy)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
