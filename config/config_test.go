package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Anthropic.APIKey)
	assert.Equal(t, "https://api.anthropic.com", cfg.Anthropic.BaseURL)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, 1024, cfg.Anthropic.ValidateMaxTokens)
	assert.Equal(t, 2048, cfg.Anthropic.GenerateMaxTokens)
	assert.Equal(t, 120*time.Second, cfg.Anthropic.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, "Kubernetes AI Platform Portal API", cfg.App.Name)
	assert.True(t, cfg.App.ManifestChecks)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("ANTHROPIC_TIMEOUT", "15s")
	t.Setenv("ANTHROPIC_GENERATE_MAX_TOKENS", "4096")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://portal.example.com")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MANIFEST_CHECKS", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Anthropic.Timeout)
	assert.Equal(t, 4096, cfg.Anthropic.GenerateMaxTokens)
	assert.Equal(t, []string{"http://localhost:3000", "https://portal.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.False(t, cfg.App.ManifestChecks)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	path := filepath.Join(t.TempDir(), "portal.yaml")
	content := []byte(`
anthropic:
  model: claude-test
cors:
  allowed_origins:
    - http://localhost:3000
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-test", cfg.Anthropic.Model)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8000"},
			Anthropic: AnthropicConfig{
				APIKey:            "k",
				BaseURL:           "https://api.anthropic.com",
				Model:             "m",
				ValidateMaxTokens: 1024,
				GenerateMaxTokens: 2048,
			},
			CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "missing api key", mutate: func(c *Config) { c.Anthropic.APIKey = "" }, wantErr: true},
		{name: "zero token budget", mutate: func(c *Config) { c.Anthropic.ValidateMaxTokens = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Anthropic.Timeout = -time.Second }, wantErr: true},
		{name: "no origins", mutate: func(c *Config) { c.CORS.AllowedOrigins = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
