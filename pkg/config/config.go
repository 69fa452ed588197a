package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	LLM       LLMConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type TelemetryConfig struct {
	Seed int64
}

// apiKeyPlaceholder is the value shipped in .env.example; treating it the
// same as an empty key keeps fresh checkouts on the deterministic path.
const apiKeyPlaceholder = "YOUR_GEMINI_API_KEY"

// Configured reports whether a usable text-generation credential is present.
// Absence is a normal branch selection, not an error.
func (c LLMConfig) Configured() bool {
	return c.APIKey != "" && c.APIKey != apiKeyPlaceholder
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("LLM_TIMEOUT_SECONDS", "8"))
	if err != nil {
		return nil, errors.New("invalid LLM_TIMEOUT_SECONDS")
	}
	if timeoutSeconds <= 0 {
		return nil, errors.New("LLM_TIMEOUT_SECONDS must be positive")
	}

	seed := time.Now().UnixNano()
	if raw := os.Getenv("TELEMETRY_SEED"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid TELEMETRY_SEED")
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "MediSense Logistics API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		LLM: LLMConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Telemetry: TelemetryConfig{
			Seed: seed,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
