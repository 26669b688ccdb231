// Package config loads process-wide configuration once at startup.
// Values come from the environment (with .env support for local
// development); in production the database URL and token secret are
// pulled from AWS Secrets Manager instead.
package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is built once in Load and
// injected into handlers and middleware; nothing re-reads the environment
// per request.
type Config struct {
	Env  string
	Port string

	// Database. DatabaseURL takes precedence over the discrete fields.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// JWT
	JWTSecret     string
	JWTExpiration time.Duration
}

// Load loads configuration from the environment. When ENV=production it
// additionally resolves DATABASE_URL and JWT_SECRET from AWS Secrets
// Manager, mirroring the deployment setup.
func Load(ctx context.Context) (*Config, error) {
	env := getEnv("ENV", "development")

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found")
		}
	}

	cfg := &Config{
		Env:  env,
		Port: getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "mymoney"),
		DBPassword:  getEnv("DB_PASSWORD", "mymoney"),
		DBName:      getEnv("DB_NAME", "mymoney"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value %q, falling back to 24h", expStr)
		expDur = 24 * time.Hour
	}
	cfg.JWTExpiration = expDur

	if env == "production" {
		secrets, err := fetchSecrets(ctx, getEnv("SECRET_NAME", "mymoney-backend-secrets"))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch secrets: %w", err)
		}
		if v := secrets["DATABASE_URL"]; v != "" {
			cfg.DatabaseURL = v
		}
		if v := secrets["JWT_SECRET"]; v != "" {
			cfg.JWTSecret = v
		}
	}

	return cfg, nil
}

// DatabaseDSN returns the connection string passed to the GORM driver.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// MigrateURL returns the postgres URL used by golang-migrate.
func (c *Config) MigrateURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
