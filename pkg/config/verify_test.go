package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("no sources", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.Sources = nil
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scraper.sources")
	})

	t.Run("broken embedded schema", func(t *testing.T) {
		orig := embeddedSchema
		defer func() { embeddedSchema = orig }()
		embeddedSchema = "{not json"
		err := VerifyAgainstEmbeddedSchema(validConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse embedded schema")
	})

	t.Run("schema missing a section", func(t *testing.T) {
		orig := embeddedSchema
		defer func() { embeddedSchema = orig }()
		embeddedSchema = `{"$ref":"#/$defs/Config","$defs":{"Config":{"type":"object","properties":{"server":{"type":"object"}}}}}`
		err := VerifyAgainstEmbeddedSchema(validConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config sections missing from schema")
		assert.Contains(t, err.Error(), "alerts")
	})
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout is required"},
		{"bad frequency", func(c *Config) { c.Alerts.Frequency = "weekly" }, "alerts.frequency"},
		{"long timeout ok", func(c *Config) { c.Server.Timeout = time.Hour }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := validateRequiredFields(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	for _, section := range []string{"server", "database", "scraper", "schedule", "notify", "alerts"} {
		assert.Contains(t, string(data), `"`+section+`"`)
	}
}

func TestEmbeddedSchemaMatchesFile(t *testing.T) {
	data, err := os.ReadFile("schema.json")
	require.NoError(t, err)
	assert.JSONEq(t, string(data), embeddedSchema)
}
