package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Org        OrgConfig
	Simulation SimulationConfig
	OpenAI     OpenAIConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// OrgConfig gates which rule categories are active for the org.
type OrgConfig struct {
	SchedulingEnabled bool
	OvertimeEnabled   bool
	KioskPhotoEnabled bool
	GeofenceEnabled   bool
}

// SimulationConfig controls the demo event source.
type SimulationConfig struct {
	Enabled  bool
	Interval time.Duration
}

// OpenAIConfig holds the LLM proxy configuration. A missing API key is not
// a startup error; the chat endpoint reports it per request.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Org rule toggles
	config.Org = OrgConfig{
		SchedulingEnabled: getEnvBool("ORG_SCHEDULING_ENABLED", true),
		OvertimeEnabled:   getEnvBool("ORG_OVERTIME_ENABLED", true),
		KioskPhotoEnabled: getEnvBool("ORG_KIOSK_PHOTO_ENABLED", true),
		GeofenceEnabled:   getEnvBool("ORG_GEOFENCE_ENABLED", true),
	}

	// Simulation configuration
	simInterval, err := time.ParseDuration(getEnv("SIMULATION_INTERVAL", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATION_INTERVAL: %w", err)
	}
	config.Simulation = SimulationConfig{
		Enabled:  getEnvBool("SIMULATION_ENABLED", true),
		Interval: simInterval,
	}

	// OpenAI configuration
	chatTimeout, err := time.ParseDuration(getEnv("OPENAI_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENAI_TIMEOUT: %w", err)
	}
	config.OpenAI = OpenAIConfig{
		APIKey:  getEnv("OPENAI_API_KEY", ""),
		Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Timeout: chatTimeout,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Simulation.Interval < time.Second {
		return fmt.Errorf("SIMULATION_INTERVAL must be at least 1s")
	}
	if c.OpenAI.BaseURL == "" {
		return fmt.Errorf("OPENAI_BASE_URL is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
