// Package config provides configuration for the consultation service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Model provider
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Conversation limits
	ContextMaxPairs int
	TitleMaxLen     int
	MaxMessageLen   int

	// Input policy
	PolicyPath string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:     getEnv("DATABASE_URL", "file:consultd.db?cache=shared&mode=rwc"),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "https://api.groq.com/openai"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		LLMModel:        getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		ContextMaxPairs: getEnvInt("CONTEXT_MAX_PAIRS", 5),
		TitleMaxLen:     getEnvInt("TITLE_MAX_LEN", 50),
		MaxMessageLen:   getEnvInt("MAX_MESSAGE_LEN", 8000),
		PolicyPath:      getEnv("CONSULT_POLICY_PATH", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
