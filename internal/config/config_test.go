package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
)

const (
	validConfigPath       = "testdata/valid_config.yaml"
	expansionConfigPath   = "testdata/expansion_config.yaml"
	invalidConfigPath     = "testdata/invalid_config.yaml"
	nonexistentConfigPath = "testdata/nonexistent_config.yaml"
	cleverTicketsName     = "clever-tickets"
	testAppName           = "test-app"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, cleverTicketsName, cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, goalmodel.DefaultCalibration(), cfg.Calibration)
	assert.Equal(t, 0.02, cfg.Evaluation.MinEdge)
	assert.Equal(t, "balanced", cfg.Ticket.DefaultStrategy)
	assert.Equal(t, 1000.0, cfg.Ticket.DefaultBankroll)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 500, cfg.Cache.MaxSize)
	assert.True(t, cfg.Metrics.Enabled)
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

// TestLoadConfigMalformed tests handling of unparsable YAML
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("CLEVER_TICKETS_APP_NAME", testAppName)
	t.Setenv("CLEVER_TICKETS_TICKET_DEFAULT_BANKROLL", "2500")

	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	assert.Equal(t, testAppName, cfg.App.Name)
	assert.Equal(t, 2500.0, cfg.Ticket.DefaultBankroll)
}

// TestLoadConfigExpansion tests ${VAR} placeholders in the YAML file
func TestLoadConfigExpansion(t *testing.T) {
	t.Setenv("TEST_TICKETS_APP_NAME", "expanded-app")
	t.Setenv("TEST_TICKETS_STRATEGY", "value")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)

	assert.Equal(t, "expanded-app", cfg.App.Name)
	assert.Equal(t, "value", cfg.Ticket.DefaultStrategy)
	assert.NoError(t, Validate(cfg))
}

// TestLoadConfigExpansionMissingVariable tests that unset placeholders expand to empty values
func TestLoadConfigExpansionMissingVariable(t *testing.T) {
	t.Setenv("TEST_TICKETS_APP_NAME", "")
	t.Setenv("TEST_TICKETS_STRATEGY", "")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)

	assert.Empty(t, cfg.App.Name)
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
}

// TestLoadWithDefaults tests defaults when no file is present
func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	require.NoError(t, err)

	assert.Equal(t, cleverTicketsName, cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, goalmodel.DefaultCalibration(), cfg.Calibration)
	assert.Equal(t, "balanced", cfg.Ticket.DefaultStrategy)
	assert.Equal(t, 1000.0, cfg.Ticket.DefaultBankroll)
	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
	assert.NoError(t, Validate(cfg))
}

// TestLoadWithDefaultsFileOverrides tests that file values win over defaults
func TestLoadWithDefaultsFileOverrides(t *testing.T) {
	cfg, err := LoadWithDefaults(validConfigPath)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Cache.MaxSize)
	assert.Equal(t, 0.02, cfg.Evaluation.MinEdge)
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}

// TestValidateInvalidConfig tests that every broken field is reported
func TestValidateInvalidConfig(t *testing.T) {
	cfg, err := Load(invalidConfigPath)
	require.NoError(t, err)

	err = Validate(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "Field 'Environment' must be one of: development, staging, production")
	assert.Contains(t, msg, "Field 'LogLevel' must be one of: debug, info, warn, error")
	assert.Contains(t, msg, "Field 'DefaultStrategy' must be one of: conservative, balanced, aggressive, value, combo")
	assert.Contains(t, msg, "Field 'FirstHalfShare'")
	assert.Contains(t, msg, "Field 'DefaultBankroll' is required")
}

// TestValidateCrossField tests cross-field rules
func TestValidateCrossField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name: "textfile without metrics",
			mutate: func(c *Config) {
				c.Metrics.Enabled = false
			},
			wantErr: "metrics textfile is set but metrics are disabled",
		},
		{
			name: "debug logging in production",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.App.LogLevel = "debug"
			},
			wantErr: "debug logging is not allowed in production",
		},
		{
			name: "production with info logging",
			mutate: func(c *Config) {
				c.App.Environment = "production"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(validConfigPath)
			require.NoError(t, err)
			tt.mutate(cfg)

			err = Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestValidateStrategyCaseInsensitive tests that strategy names are matched like the CLI flag
func TestValidateStrategyCaseInsensitive(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.Ticket.DefaultStrategy = "Aggressive"
	assert.NoError(t, Validate(cfg))
}
