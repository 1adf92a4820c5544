package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDeepSeekAPIURL is the chat completions endpoint used when
// DEEPSEEK_API_URL is not overridden (tests point it at a local server).
const DefaultDeepSeekAPIURL = "https://api.deepseek.com/v1/chat/completions"

// Config holds all application configuration
type Config struct {
	Port               string
	GoEnv              string
	DatabaseURL        string // optional; when set the server uses PostgreSQL
	DBPath             string // sqlite database file used when DatabaseURL is empty
	ResetProducts      bool   // drop and reseed the products table on startup
	DeepSeekAPIKey     string // optional; chat falls back to canned replies when empty
	DeepSeekAPIURL     string
	AWSRegion          string
	AWSS3Bucket        string // optional; product images stay on local disk when empty
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	FrontendDir        string
	ImageDir           string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		Port:               getEnv("PORT", "5005"),
		GoEnv:              env,
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBPath:             getEnv("DB_PATH", "shop.db"),
		ResetProducts:      getEnv("RESET_PRODUCTS", "true") == "true",
		DeepSeekAPIKey:     getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL:     getEnv("DEEPSEEK_API_URL", DefaultDeepSeekAPIURL),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		FrontendDir:        getEnv("FRONTEND_DIR", "./frontend"),
		ImageDir:           getEnv("IMG_DIR", "./frontend/img"),
	}

	return config, nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
