package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// TickConfig configures the scheduled-task caller.
type TickConfig struct {
	APIURL         string
	PipelineAPIKey string
	RequestTimeout time.Duration
	// Interval repeats the call until interrupted; zero runs once.
	Interval time.Duration
}

// LoadTick reads the tick configuration and validates required fields.
func LoadTick() (*TickConfig, error) {
	_ = godotenv.Load()

	cfg := &TickConfig{
		APIURL:         getEnv("POCKETLEDGER_API_URL", "http://localhost:8080"),
		PipelineAPIKey: os.Getenv("PIPELINE_API_KEY"),
	}
	if cfg.PipelineAPIKey == "" {
		return nil, fmt.Errorf("PIPELINE_API_KEY is required")
	}

	timeout, err := parseDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", timeout)
	}
	cfg.RequestTimeout = timeout

	interval, err := parseDuration("TICK_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	if interval < 0 {
		return nil, fmt.Errorf("TICK_INTERVAL must not be negative, got %v", interval)
	}
	cfg.Interval = interval

	return cfg, nil
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
