package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker bool
	Port     string

	// Database configs
	DatabaseType     string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string

	// LLM configs
	LLMProvider            string
	LLMModel               string
	LLMAPIKey              string
	LLMTemperature         float32
	LLMMaxCompletionTokens int
	LLMMaxRetries          int

	// Path to a JSON file with schema-specific SQL identifier corrections.
	// Empty means the built-in default table is used.
	SQLCorrectionsFile string
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3000")

	// Database configs
	Env.DatabaseType = getEnvWithDefault("ASKDB_DATABASE_TYPE", "mysql")
	Env.DatabaseHost = getRequiredEnv("ASKDB_DATABASE_HOST", "localhost")
	Env.DatabasePort = getRequiredEnv("ASKDB_DATABASE_PORT", "3306")
	Env.DatabaseUser = getRequiredEnv("ASKDB_DATABASE_USER", "root")
	Env.DatabasePassword = getRequiredEnv("ASKDB_DATABASE_PASSWORD", "")
	Env.DatabaseName = getRequiredEnv("ASKDB_DATABASE_NAME", "classicmodels")

	// LLM configs
	Env.LLMProvider = getEnvWithDefault("ASKDB_LLM_PROVIDER", "openai")
	Env.LLMModel = getEnvWithDefault("ASKDB_LLM_MODEL", "gpt-4")
	Env.LLMAPIKey = getRequiredEnv("ASKDB_LLM_API_KEY", "")
	Env.LLMTemperature = getFloatEnvWithDefault("ASKDB_LLM_TEMPERATURE", 0)
	Env.LLMMaxCompletionTokens = getIntEnvWithDefault("ASKDB_LLM_MAX_COMPLETION_TOKENS", 1024)
	Env.LLMMaxRetries = getIntEnvWithDefault("ASKDB_LLM_MAX_RETRIES", 0)

	Env.SQLCorrectionsFile = getEnvWithDefault("ASKDB_SQL_CORRECTIONS_FILE", "")

	return validateConfig()
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getRequiredEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func getFloatEnvWithDefault(key string, defaultValue float32) float32 {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strValue, 32)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %v\n", key, defaultValue)
		return defaultValue
	}
	return float32(value)
}

func validateConfig() error {
	if Env.DatabaseType != "mysql" && Env.DatabaseType != "postgresql" {
		return fmt.Errorf("unsupported ASKDB_DATABASE_TYPE: %s (must be mysql or postgresql)", Env.DatabaseType)
	}

	if Env.LLMProvider != "openai" && Env.LLMProvider != "gemini" {
		return fmt.Errorf("unsupported ASKDB_LLM_PROVIDER: %s (must be openai or gemini)", Env.LLMProvider)
	}

	if Env.LLMAPIKey == "" {
		return fmt.Errorf("ASKDB_LLM_API_KEY is required")
	}

	if Env.LLMTemperature < 0 || Env.LLMTemperature > 2 {
		return fmt.Errorf("ASKDB_LLM_TEMPERATURE must be between 0 and 2, got: %v", Env.LLMTemperature)
	}

	if Env.LLMMaxRetries < 0 {
		return fmt.Errorf("ASKDB_LLM_MAX_RETRIES must not be negative, got: %d", Env.LLMMaxRetries)
	}

	return nil
}
