package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
}

type APIConfig struct {
	V1Prefix    string
	ProjectName string
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	// URL is the broker connection string, e.g. redis://redis:6379/0.
	URL               string
	RateLimitRequests int
	RateLimitWindow   int // in seconds
}

type OpenAIConfig struct {
	// APIKey is optional; when empty, embedding generation is disabled.
	APIKey string
}

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("API_V1_PREFIX", "/api/v1")
	viper.SetDefault("PROJECT_NAME", "POD Trend & Design Automation API")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("POSTGRES_USER", "pod_user")
	viper.SetDefault("POSTGRES_PASSWORD", "pod_password")
	viper.SetDefault("POSTGRES_DB", "pod_db")
	viper.SetDefault("POSTGRES_HOST", "postgres")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_SCHEMA", "public")
	viper.SetDefault("REDIS_URL", "redis://redis:6379/0")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	cfg := &Config{
		API: APIConfig{
			V1Prefix:    viper.GetString("API_V1_PREFIX"),
			ProjectName: viper.GetString("PROJECT_NAME"),
		},
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetString("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			Database: viper.GetString("POSTGRES_DB"),
			Schema:   viper.GetString("POSTGRES_SCHEMA"),
		},
		Redis: RedisConfig{
			URL:               viper.GetString("REDIS_URL"),
			RateLimitRequests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			RateLimitWindow:   viper.GetInt("RATE_LIMIT_WINDOW"),
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that every required setting is present. A failure here is
// fatal at startup; a missing OpenAI key is not an error, it only disables
// the embedding-dependent capabilities.
func (c *Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"POSTGRES_USER", c.Database.User},
		{"POSTGRES_PASSWORD", c.Database.Password},
		{"POSTGRES_DB", c.Database.Database},
		{"POSTGRES_HOST", c.Database.Host},
		{"POSTGRES_PORT", c.Database.Port},
		{"REDIS_URL", c.Redis.URL},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("required setting %s is missing", r.key)
		}
	}

	if c.Redis.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Redis.RateLimitRequests)
	}
	if c.Redis.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %d", c.Redis.RateLimitWindow)
	}

	return nil
}

// EmbeddingsEnabled reports whether an OpenAI credential was supplied.
func (c *Config) EmbeddingsEnabled() bool {
	return c.OpenAI.APIKey != ""
}
