package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "EUR", cfg.Display.Currency)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SPLIT_LEDGER_DATA_FILE", "/tmp/other.json")
	t.Setenv("SPLIT_LEDGER_LOG_LEVEL", "debug")
	t.Setenv("SPLIT_LEDGER_DISPLAY_CURRENCY", "CHF")

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.json", cfg.Data.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "CHF", cfg.Display.Currency)
}

func TestInitializeConfig_InvalidEnvValue(t *testing.T) {
	t.Setenv("SPLIT_LEDGER_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Data.File = DefaultDataFile
		cfg.CSV.Delimiter = ","
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "Valid", mutate: func(*Config) {}},
		{name: "JSONFormat", mutate: func(c *Config) { c.Log.Format = "json" }},
		{name: "BadLevel", mutate: func(c *Config) { c.Log.Level = "verbose" }, expectError: true},
		{name: "BadFormat", mutate: func(c *Config) { c.Log.Format = "xml" }, expectError: true},
		{name: "LongDelimiter", mutate: func(c *Config) { c.CSV.Delimiter = ",," }, expectError: true},
		{name: "EmptyDelimiter", mutate: func(c *Config) { c.CSV.Delimiter = "" }, expectError: true},
		{name: "EmptyDataFile", mutate: func(c *Config) { c.Data.File = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_FallsBackToInfo(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
