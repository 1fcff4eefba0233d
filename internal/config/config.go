// Package config provides configuration management for the Clever Tickets application.
package config

import (
	"time"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
)

// Config represents the complete application configuration
type Config struct {
	App         AppConfig             `mapstructure:"app" validate:"required"`
	Calibration goalmodel.Calibration `mapstructure:"calibration" validate:"required"`
	Evaluation  EvaluationConfig      `mapstructure:"evaluation"`
	Ticket      TicketConfig          `mapstructure:"ticket" validate:"required"`
	Cache       CacheConfig           `mapstructure:"cache" validate:"required"`
	Metrics     MetricsConfig         `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EvaluationConfig represents value bet evaluation settings
type EvaluationConfig struct {
	// MinEdge is the edge a priced market must exceed to be reported as a value bet
	MinEdge float64 `mapstructure:"min_edge" validate:"gte=0"`
	// UseOddsBand drops candidates outside the consensus-derived odds band
	UseOddsBand bool `mapstructure:"use_odds_band"`
}

// TicketConfig represents ticket building defaults
type TicketConfig struct {
	DefaultStrategy string  `mapstructure:"default_strategy" validate:"required,strategy"`
	DefaultBankroll float64 `mapstructure:"default_bankroll" validate:"required,gt=0"`
}

// CacheConfig represents market table cache settings
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	MaxSize    int  `mapstructure:"max_size" validate:"required,gt=0"`
}

// MetricsConfig represents metrics output settings
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Textfile is where metrics are written on exit, in the node exporter textfile format
	Textfile string `mapstructure:"textfile"`
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
