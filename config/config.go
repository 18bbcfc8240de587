package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Anthropic AnthropicConfig
	CORS      CORSConfig
	App       AppConfig
}

type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type AnthropicConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Version           string
	Timeout           time.Duration
	ValidateMaxTokens int
	GenerateMaxTokens int
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

type AppConfig struct {
	Name           string
	Environment    string
	LogLevel       string
	Version        string
	ManifestChecks bool
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; cfgFile, when non-empty,
// names a YAML file whose values sit below the environment.
func Load(cfgFile string) (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	v := newViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetString("port"),
			ReadHeaderTimeout: v.GetDuration("read_header_timeout"),
			ShutdownTimeout:   v.GetDuration("shutdown_timeout"),
		},
		Anthropic: AnthropicConfig{
			APIKey:            v.GetString("anthropic.api_key"),
			BaseURL:           v.GetString("anthropic.base_url"),
			Model:             v.GetString("anthropic.model"),
			Version:           v.GetString("anthropic.version"),
			Timeout:           v.GetDuration("anthropic.timeout"),
			ValidateMaxTokens: v.GetInt("anthropic.validate_max_tokens"),
			GenerateMaxTokens: v.GetInt("anthropic.generate_max_tokens"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getList(v, "cors.allowed_origins"),
			AllowCredentials: v.GetBool("cors.allow_credentials"),
		},
		App: AppConfig{
			Name:           v.GetString("app.name"),
			Environment:    v.GetString("app.env"),
			LogLevel:       v.GetString("log_level"),
			Version:        v.GetString("app.version"),
			ManifestChecks: v.GetBool("manifest_checks"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Anthropic.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}

	if c.Anthropic.BaseURL == "" {
		return fmt.Errorf("ANTHROPIC_BASE_URL is required")
	}

	if c.Anthropic.Model == "" {
		return fmt.Errorf("ANTHROPIC_MODEL is required")
	}

	if c.Anthropic.ValidateMaxTokens <= 0 || c.Anthropic.GenerateMaxTokens <= 0 {
		return fmt.Errorf("max token budgets must be positive")
	}

	if c.Anthropic.Timeout < 0 {
		return fmt.Errorf("ANTHROPIC_TIMEOUT must not be negative")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	return nil
}

// newViper binds every key to its environment variable: "anthropic.api_key"
// resolves from ANTHROPIC_API_KEY, "app.env" from APP_ENV and so on.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("read_header_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.version", "2023-06-01")
	v.SetDefault("anthropic.timeout", 120*time.Second)
	v.SetDefault("anthropic.validate_max_tokens", 1024)
	v.SetDefault("anthropic.generate_max_tokens", 2048)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allow_credentials", true)

	v.SetDefault("app.name", "Kubernetes AI Platform Portal API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("log_level", "info")
	v.SetDefault("manifest_checks", true)

	return v
}

// getList accepts either a YAML list or a comma separated string.
func getList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	default:
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
