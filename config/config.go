package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	RedisAddr     string
	RedisPassword string

	AppBaseURL string // public URL embedded in registration emails

	SendGridKey  string
	SendGridHost string
	EmailSender  string
	EmailName    string
	AdminEmail   string

	FunctionsBaseURL string // base URL of the notification function endpoints
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),

		SendGridKey:  getEnv("SENDGRID_API_KEY", ""),
		SendGridHost: getEnv("SENDGRID_HOST", "https://api.sendgrid.com"),
		EmailSender:  getEnv("EMAIL_SENDER", "noreply@alfarooqacademy.com"),
		EmailName:    getEnv("EMAIL_SENDER_NAME", "Al-Farooq Academy"),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@alfarooqacademy.com"),

		FunctionsBaseURL: getEnv("FUNCTIONS_BASE_URL", "http://localhost:3000/functions/v1"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY is not set. Outbound emails will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
