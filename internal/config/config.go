// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Storage     StorageConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
	// Per-IP request budgets. The login limit is a burst per minute,
	// the general limit a sustained rate per second.
	RateLimitPerSecond     int
	LoginAttemptsPerMinute int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

// AuthConfig holds the single operator credential pair and the
// session-cookie signing key. PasswordHash, when set, is a bcrypt
// hash and takes precedence over the plain Password.
type AuthConfig struct {
	Login           string
	Password        string
	PasswordHash    string
	SecretKey       string
	SessionTTLHours int
}

// StorageConfig controls where decoded images land and how stored
// relative paths are resolved into absolute URLs. When S3Bucket is
// set, written images are mirrored to S3 as well.
type StorageConfig struct {
	BaseURL    string
	StaticRoot string
	AWS        AWSConfig
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),

			RateLimitPerSecond:     getEnvAsInt("RATE_LIMIT_PER_SECOND", 20),
			LoginAttemptsPerMinute: getEnvAsInt("LOGIN_ATTEMPTS_PER_MINUTE", 5),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASS", ""),
			Database:     getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Auth: AuthConfig{
			Login:           getEnv("LOGIN", ""),
			Password:        getEnv("PASSWORD", ""),
			PasswordHash:    getEnv("PASSWORD_HASH", ""),
			SecretKey:       getEnv("SESSION_SECRET", "change-me-in-production"),
			SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
		},
		Storage: StorageConfig{
			BaseURL:    getEnv("APP_URL", "http://localhost:8000"),
			StaticRoot: getEnv("STATIC_FOLDER", "web/static"),
			AWS: AWSConfig{
				Region:          getEnv("AWS_REGION", "us-east-1"),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
				S3Bucket:        getEnv("AWS_S3_BUCKET", ""),
			},
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Auth.Login == "" || (c.Auth.Password == "" && c.Auth.PasswordHash == "") {
		return fmt.Errorf("operator credentials (LOGIN, PASSWORD) are required")
	}

	if c.Auth.SecretKey == "change-me-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
