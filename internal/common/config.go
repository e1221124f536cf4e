package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Vision   VisionConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// VisionConfig holds vision-provider configuration. Scorebook photos and
// roster/schedule PDFs go to independently configurable providers since the
// two back-ends have different strengths on handwriting vs. tabular print.
type VisionConfig struct {
	ScorebookProvider string // "anthropic" | "openai"
	DocumentProvider  string // "anthropic" | "openai"

	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Vision: VisionConfig{
			ScorebookProvider: getEnv("SCOREBOOK_PROVIDER", "anthropic"),
			DocumentProvider:  getEnv("DOCUMENT_PROVIDER", "openai"),
			AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicBaseURL:  getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1"),
			AnthropicModel:    getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o"),
			MaxTokens:         getEnvAsInt("VISION_MAX_TOKENS", 8192),
			Temperature:       getEnvAsFloat32("VISION_TEMPERATURE", 0.0),
			Timeout:           getEnvAsDuration("VISION_TIMEOUT", 90*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if needsKey(c.Vision.ScorebookProvider, c.Vision.DocumentProvider, "anthropic") && c.Vision.AnthropicAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "ANTHROPIC_API_KEY is required", ErrInvalidInput)
	}
	if needsKey(c.Vision.ScorebookProvider, c.Vision.DocumentProvider, "openai") && c.Vision.OpenAIAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	return nil
}

func needsKey(a, b, provider string) bool {
	return a == provider || b == provider
}
