package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Store
	StoreDriver    string
	StoreKeyPrefix string
	SQLitePath     string

	// Database (postgres driver)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// App lock
	JWTSecret        string
	JWTExpirationDur time.Duration
	AppPasscodeHash  string

	// Pipeline
	PipelineAPIKey string

	// Ledger behaviour
	NotificationHistoryCap int
	ScheduleCatchUp        bool
	DedupeBudgetAlerts     bool
	ProcessOnStartup       bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StoreDriver:    getEnv("STORE_DRIVER", StoreMemory),
		StoreKeyPrefix: getEnv("STORE_KEY_PREFIX", "pocketledger"),
		SQLitePath:     getEnv("SQLITE_PATH", "pocketledger.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "pocketledger"),
		DBPassword: getEnv("DB_PASSWORD", "pocketledger"),
		DBName:     getEnv("DB_NAME", "pocketledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:       getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		AppPasscodeHash: getEnv("APP_PASSCODE_HASH", ""),

		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),

		NotificationHistoryCap: getEnvInt("NOTIFICATION_HISTORY_CAP", 100),
		ScheduleCatchUp:        getEnvBool("SCHEDULE_CATCH_UP", false),
		DedupeBudgetAlerts:     getEnvBool("DEDUPE_BUDGET_ALERTS", false),
		ProcessOnStartup:       getEnvBool("PROCESS_ON_STARTUP", true),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	switch config.StoreDriver {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		log.Printf("Warning: unknown STORE_DRIVER '%s', falling back to %s\n", config.StoreDriver, StoreMemory)
		config.StoreDriver = StoreMemory
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, v, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, v, defaultValue)
		return defaultValue
	}
	return b
}
