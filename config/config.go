package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string

	// Staff login seeded on first start
	AdminEmail    string
	AdminPassword string

	// Email configuration for the daily sales report
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	FromEmail       string
	FromName        string
	ReportRecipient string
	ReportInterval  time.Duration

	MetricsPrefix string
}

func Load() *Config {
	// .env is optional; real deployments use environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motostream?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@motostream.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),

		SMTPHost:        getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:        getEnvAsInt("SMTP_PORT", 2525),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		FromEmail:       getEnv("FROM_EMAIL", "noreply@motostream.local"),
		FromName:        getEnv("FROM_NAME", "MotoStream"),
		ReportRecipient: getEnv("REPORT_RECIPIENT", ""),
		ReportInterval:  getEnvAsDuration("REPORT_INTERVAL", 24*time.Hour),

		MetricsPrefix: getEnv("METRICS_PREFIX", "motostream"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
