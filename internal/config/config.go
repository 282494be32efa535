package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port            string
	Env             string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Twilio SMS
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// Alert destination
	CaregiverPhoneNumber string
}

// Load reads the process environment (and .env when present). It panics
// if a required variable is missing so misconfiguration stops startup.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8000"),
		Env:                  getEnvOrDefault("ENV", "development"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		ShutdownTimeout:      time.Duration(getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		TwilioAccountSID:     mustGetEnv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      mustGetEnv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:     mustGetEnv("TWILIO_FROM_NUMBER"),
		CaregiverPhoneNumber: mustGetEnv("CAREGIVER_PHONE_NUMBER"),
	}

	return cfg
}

// LogFormat picks the zap encoder for the environment.
func (c *Config) LogFormat() string {
	if c.Env == "development" {
		return "console"
	}
	return "json"
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
