// Package config loads runtime settings from an optional YAML file and
// environment variables. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`

	Community struct {
		// EmailDomain restricts registration to one institution.
		EmailDomain string `yaml:"email_domain" env:"CUCARES_EMAIL_DOMAIN"`

		// AutoAcceptFriendRequests turns every sent request into a friendship.
		AutoAcceptFriendRequests bool `yaml:"auto_accept_friend_requests" env:"CUCARES_AUTO_ACCEPT_FRIENDS"`

		// EnforceCapacity rejects sign-ups once TotalSlots is reached.
		EnforceCapacity bool `yaml:"enforce_capacity" env:"CUCARES_ENFORCE_CAPACITY"`

		// Timezone is the IANA zone fixture dates are written in.
		Timezone string `yaml:"timezone" env:"CUCARES_TIMEZONE"`

		// SeedFile replaces the embedded seed when set.
		SeedFile string `yaml:"seed_file" env:"CUCARES_SEED_FILE"`
	} `yaml:"community"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Community.EmailDomain = "cornell.edu"
	cfg.Community.Timezone = "America/New_York"
	return cfg
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Community.Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Community.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Community.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Community.Timezone, err)
	}
	return loc, nil
}
