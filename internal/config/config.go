package config

import (
	"fmt"
	"os"
	"time"

	"cloud-dictionary-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Store       StoreConfig
	Search      SearchConfig
	Log         LogConfig
	API         APIConfig
}

// StoreConfig holds term store configuration
type StoreConfig struct {
	Type       string `validate:"required,oneof=dynamodb sqlite memory"`
	TableName  string `validate:"required"`
	Region     string `validate:"required_if=Type dynamodb"`
	Endpoint   string `validate:"omitempty,url"` // DynamoDB Local or another compatible endpoint
	SQLitePath string `validate:"required_if=Type sqlite"`
}

// SearchConfig holds TermSearch matching configuration
type SearchConfig struct {
	MatchMode models.MatchMode `validate:"required,oneof=folded legacy"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

// APIConfig holds settings for clients of the deployed API
type APIConfig struct {
	BaseURL string        `validate:"omitempty,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// Load loads configuration from environment variables and a .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STORE_TYPE", StoreMemory)
	v.SetDefault("TERMS_TABLE", "CloudTerms")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SQLITE_PATH", "./data/terms.db")
	v.SetDefault("SEARCH_MATCH_MODE", string(models.MatchFolded))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("API_BASE_URL", "http://localhost:8081")
	v.SetDefault("API_TIMEOUT", "10s")

	mode, err := models.ParseMatchMode(v.GetString("SEARCH_MATCH_MODE"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Store: StoreConfig{
			Type:       v.GetString("STORE_TYPE"),
			TableName:  v.GetString("TERMS_TABLE"),
			Region:     v.GetString("AWS_REGION"),
			Endpoint:   v.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		Search: SearchConfig{
			MatchMode: mode,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: v.GetDuration("API_TIMEOUT"),
		},
	}

	return config, nil
}

// Validate checks the configuration for missing or inconsistent values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
