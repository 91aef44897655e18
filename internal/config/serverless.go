package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			Stage:        GetEnv("STAGE", "dev"),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for a Lambda deployment.
// Functions always read the managed table and log JSON for CloudWatch.
func AdaptConfigForServerless(sc *ServerlessConfig, config *Config) *Config {
	if sc == nil || !sc.IsLambda {
		return config
	}

	config.Store.Type = StoreDynamoDB
	config.Store.SQLitePath = ""
	if sc.Region != "" {
		config.Store.Region = sc.Region
	}
	config.Log.Format = "json"

	return config
}

// GetOptimizedConfig returns validated configuration for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	config = AdaptConfigForServerless(GetServerlessConfig(), config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
