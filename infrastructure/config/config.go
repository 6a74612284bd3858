package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	GSI1IndexName string // user -> project relations
	GSI2IndexName string // status/priority task filtering
	EventBusName  string

	// Task defaults
	DefaultAssignee string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable:   getEnv("TABLE_NAME", "gestiondetareas"),
		GSI1IndexName:   getEnv("GSI1_INDEX_NAME", "gsi1-index"),
		GSI2IndexName:   getEnv("GSI2_INDEX_NAME", "gsi2-index"),
		EventBusName:    getEnv("EVENT_BUS_NAME", ""),
		DefaultAssignee: getEnv("DEFAULT_ASSIGNEE", "daniel"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.Environment == "production" {
		if c.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
