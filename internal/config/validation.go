package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/clever-tickets/internal/strategy"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration only fails on an empty tag
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("strategy", validateStrategy)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateStrategy checks the name against the fixed strategy set
func validateStrategy(fl validator.FieldLevel) bool {
	_, err := strategy.Lookup(fl.Field().String())
	return err == nil
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	cal := cfg.Calibration
	if cal.HomeFactor <= 0 || cal.AwayFactor <= 0 {
		return fmt.Errorf("calibration home_factor and away_factor must be positive")
	}

	if cfg.Cache.Enabled && cfg.Cache.MaxSize <= 0 {
		return fmt.Errorf("cache max_size must be positive when the cache is enabled")
	}

	if cfg.Metrics.Textfile != "" && !cfg.Metrics.Enabled {
		return fmt.Errorf("metrics textfile is set but metrics are disabled")
	}

	if cfg.IsProduction() && cfg.App.LogLevel == "debug" {
		return fmt.Errorf("debug logging is not allowed in production")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var sb strings.Builder
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			fmt.Fprintf(&sb, "- Field '%s' is required\n", field)
		case "gt", "gte", "lt", "lte":
			fmt.Fprintf(&sb, "- Field '%s' validation failed: numeric constraint %s violated, got '%v'\n", field, tag, value)
		case "environment":
			fmt.Fprintf(&sb, "- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			fmt.Fprintf(&sb, "- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "strategy":
			fmt.Fprintf(&sb, "- Field '%s' must be one of: %s, got '%v'\n", field, strings.Join(strategy.Names(), ", "), value)
		default:
			fmt.Fprintf(&sb, "- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", sb.String())
}
