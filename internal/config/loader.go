package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
)

const (
	defaultConfigPath = "config/config.yaml"
	envPrefix         = "CLEVER_TICKETS"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return unmarshal(v)
}

// LoadWithDefaults loads configuration with default values for optional fields.
// A missing file is not an error: defaults and environment variables are used.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// CLEVER_TICKETS_TICKET_DEFAULT_BANKROLL overrides ticket.default_bankroll
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	cal := goalmodel.DefaultCalibration()

	v.SetDefault("app.name", "clever-tickets")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("calibration.home_factor", cal.HomeFactor)
	v.SetDefault("calibration.away_factor", cal.AwayFactor)
	v.SetDefault("calibration.corners_factor", cal.CornersFactor)
	v.SetDefault("calibration.first_half_share", cal.FirstHalfShare)
	v.SetDefault("calibration.cards_base", cal.CardsBase)
	v.SetDefault("calibration.cards_tension", cal.CardsTension)
	v.SetDefault("evaluation.min_edge", 0.0)
	v.SetDefault("evaluation.use_odds_band", false)
	v.SetDefault("ticket.default_strategy", "balanced")
	v.SetDefault("ticket.default_bankroll", 1000.0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("cache.max_size", 1000)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
