package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	MigrationsPath string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	JWTSecret string

	AWSRegion string
	S3Bucket  string

	CORSAllowOrigins string
}

// LoadConfig reads configuration from the environment, loading .env first
// when present.
func LoadConfig() (*Config, error) {
	// Convenience for local dev; production relies on real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: env("SERVER_PORT", "8080"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBName:     env("DB_NAME", "hms"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  env("DB_SSLMODE", "disable"),

		MigrationsPath: env("MIGRATIONS_PATH", "file://migrations"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      env("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  env("SMTP_FROM_NAME", "Stayfront Hotel"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AWSRegion: env("AWS_REGION", "us-east-1"),
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),

		CORSAllowOrigins: env("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// GetDBConnString builds the lib/pq connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
