package config

import (
	"bytes"
	"os"
	"testing"
	"time"

	"cloud-dictionary-api/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "ENVIRONMENT", "STORE_TYPE", "TERMS_TABLE", "AWS_REGION", "DYNAMODB_ENDPOINT",
	"SQLITE_PATH", "SEARCH_MATCH_MODE", "LOG_LEVEL", "LOG_FORMAT", "API_BASE_URL", "API_TIMEOUT",
}

// clearEnv unsets every configuration variable for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8081", cfg.Port)
				assert.Equal(t, StoreMemory, cfg.Store.Type)
				assert.Equal(t, "CloudTerms", cfg.Store.TableName)
				assert.Equal(t, models.MatchFolded, cfg.Search.MatchMode)
				assert.Equal(t, 10*time.Second, cfg.API.Timeout)
				assert.Equal(t, "http://localhost:8081", cfg.API.BaseURL)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "dynamodb with local endpoint",
			envVars: map[string]string{
				"STORE_TYPE":        StoreDynamoDB,
				"TERMS_TABLE":       "CloudTermsTest",
				"AWS_REGION":        "eu-west-1",
				"DYNAMODB_ENDPOINT": "http://localhost:8000",
				"SEARCH_MATCH_MODE": "legacy",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "CloudTermsTest", cfg.Store.TableName)
				assert.Equal(t, "eu-west-1", cfg.Store.Region)
				assert.Equal(t, "http://localhost:8000", cfg.Store.Endpoint)
				assert.Equal(t, models.MatchLegacy, cfg.Search.MatchMode)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name:    "unknown match mode",
			envVars: map[string]string{"SEARCH_MATCH_MODE": "fuzzy"},
			wantErr: true,
		},
		{
			name:    "unknown store type fails validation",
			envVars: map[string]string{"STORE_TYPE": "redis"},
			check: func(t *testing.T, cfg *Config) {
				assert.Error(t, cfg.Validate())
			},
		},
		{
			name:    "non-numeric port fails validation",
			envVars: map[string]string{"PORT": "http"},
			check: func(t *testing.T, cfg *Config) {
				assert.Error(t, cfg.Validate())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_TYPE", StoreSQLite)

	cfg, err := Load()
	require.NoError(t, err)

	t.Run("ServerModeUnchanged", func(t *testing.T) {
		adapted := AdaptConfigForServerless(&ServerlessConfig{IsLambda: false}, cfg)
		assert.Equal(t, StoreSQLite, adapted.Store.Type)
	})

	t.Run("LambdaForcesDynamoDB", func(t *testing.T) {
		adapted := AdaptConfigForServerless(&ServerlessConfig{IsLambda: true, Region: "ap-southeast-2"}, cfg)
		assert.Equal(t, StoreDynamoDB, adapted.Store.Type)
		assert.Equal(t, "ap-southeast-2", adapted.Store.Region)
		assert.Equal(t, "json", adapted.Log.Format)
		assert.NoError(t, adapted.Validate())
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("dropped")
	logger.WithField("term", "EC2").Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"term":"EC2"`)

	fallback := newLogger(LogConfig{Level: "chatty", Format: "text"}, &buf)
	assert.Equal(t, logrus.InfoLevel, fallback.GetLevel())
}
