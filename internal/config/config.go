package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	Timezone    string `json:"timezone"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// StoreBackend selects the application store: "mongodb" or "memory"
	StoreBackend string `json:"store_backend"`

	// Collection names
	SolicitudesCollection string `json:"mongo_solicitudes_collection"`
	ConfigCollection      string `json:"mongo_config_collection"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Bureau (BCRA Central de Deudores) configuration
	BCRABaseURL      string        `json:"bcra_base_url"`
	BCRATimeout      time.Duration `json:"bcra_timeout"`
	BCRACacheTTL     time.Duration `json:"bcra_cache_ttl"`
	BCRARateLimit    int           `json:"bcra_rate_limit"`
	BCRARateInterval time.Duration `json:"bcra_rate_interval"`

	// Application rules
	RecencyWindowDays int    `json:"recency_window_days"`
	TestCUIL          string `json:"test_cuil"`

	// Back-office roles
	AdminGroup  string `json:"admin_group"`
	ReportGroup string `json:"report_group"`

	// Tracing
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// TracingSampleRatio is the share of root traces kept, between 0 and 1
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`
}

// Store backends
const (
	StoreBackendMongoDB = "mongodb"
	StoreBackendMemory  = "memory"
)

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	solicitudesCollection := os.Getenv("MONGODB_SOLICITUDES_COLLECTION")
	if solicitudesCollection == "" {
		return fmt.Errorf("MONGODB_SOLICITUDES_COLLECTION environment variable is required")
	}

	bcraTimeout, err := time.ParseDuration(getEnvOrDefault("BCRA_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid BCRA_TIMEOUT: %w", err)
	}

	recencyWindow := getEnvAsIntOrDefault("RECENCY_WINDOW_DAYS", 30)
	if recencyWindow < 0 {
		return fmt.Errorf("invalid RECENCY_WINDOW_DAYS: must not be negative")
	}

	sampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil || sampleRatio < 0 || sampleRatio > 1 {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: must be a number between 0 and 1")
	}

	storeBackend := strings.ToLower(getEnvOrDefault("STORE_BACKEND", StoreBackendMongoDB))
	if storeBackend != StoreBackendMongoDB && storeBackend != StoreBackendMemory {
		return fmt.Errorf("invalid STORE_BACKEND %q: must be mongodb or memory", storeBackend)
	}

	AppConfig = &Config{
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		Timezone:    getEnvOrDefault("TIMEZONE", "America/Argentina/Buenos_Aires"),

		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "microcuotas"),

		StoreBackend:          storeBackend,
		SolicitudesCollection: solicitudesCollection,
		ConfigCollection:      getEnvOrDefault("MONGODB_CONFIG_COLLECTION", "config"),

		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		BCRABaseURL:      strings.TrimRight(getEnvOrDefault("BCRA_BASE_URL", "https://api.bcra.gob.ar/centraldedeudores/v1.0"), "/"),
		BCRATimeout:      bcraTimeout,
		BCRACacheTTL:     getEnvAsDurationOrDefault("BCRA_CACHE_TTL", 24*time.Hour),
		BCRARateLimit:    getEnvAsIntOrDefault("BCRA_RATE_LIMIT", 10),
		BCRARateInterval: getEnvAsDurationOrDefault("BCRA_RATE_INTERVAL", time.Second),

		RecencyWindowDays: recencyWindow,
		TestCUIL:          getEnvOrDefault("TEST_CUIL", ""),

		AdminGroup:  getEnvOrDefault("ADMIN_GROUP", "admin"),
		ReportGroup: getEnvOrDefault("REPORT_GROUP", "report"),

		TracingEnabled:     getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: sampleRatio,
	}

	return nil
}

// Location returns the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
