package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production
	HTTP HTTPConfig

	// Dataset
	Dataset DatasetConfig

	// Analytics config file (YAML). Empty means built-in defaults.
	AnalyticsConfig string

	// Database (only required by the postgres dataset source)
	Database DatabaseConfig

	// Redis (API rate limiter backend)
	Redis RedisConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool

	// Scheduler
	RefreshSchedule string
}

// HTTPConfig holds API server timeouts
type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatasetConfig describes where the player records come from
type DatasetConfig struct {
	Path        string // file path, URL or table-less DSN depending on Source
	Source      string // csv, xlsx, http, postgres (empty = inferred from Path)
	Sheet       string // xlsx sheet name (empty = first sheet)
	Table       string // postgres table name
	CurrentYear int    // 0 = wall clock
	PublicURL   string // public page of the dataset
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RateLimitConfig bounds API request throughput per client
type RateLimitConfig struct {
	RPS   int // 0 disables limiting
	Burst int
}

// Dataset source kinds
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Load reads configuration from environment variables
// ⭐ SSOT: the only function that calls os.Getenv()
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),
		HTTP: HTTPConfig{
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", "30s"),
			IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "30s"),
		},

		Dataset: DatasetConfig{
			Path:        getEnv("DATASET_PATH", "datasets/CLEAN_FIFA23_official_data.csv"),
			Source:      strings.ToLower(getEnv("DATASET_SOURCE", "")),
			Sheet:       getEnv("DATASET_SHEET", ""),
			Table:       getEnv("DATASET_TABLE", "players"),
			CurrentYear: getEnvAsInt("DATASET_CURRENT_YEAR", 0),
			PublicURL:   getEnv("DATASET_PUBLIC_URL", "https://www.kaggle.com/datasets/kevwesophia/fifa23-official-datasetclean-data"),
		},

		AnalyticsConfig: getEnv("ANALYTICS_CONFIG", ""),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		RateLimit: RateLimitConfig{
			RPS:   getEnvAsInt("RATE_LIMIT_RPS", 20),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 40),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Monitoring
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),

		// Scheduler (seconds field first: new year, 00:05)
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 5 0 1 1 *"),
	}

	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = InferSource(cfg.Dataset.Path)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// InferSource guesses the dataset source kind from a path or URL
func InferSource(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceHTTP
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return SourcePostgres
	case strings.HasSuffix(lower, ".xlsx"):
		return SourceXLSX
	default:
		return SourceCSV
	}
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.Dataset.Source {
	case SourceCSV, SourceXLSX, SourceHTTP:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres dataset source")
		}
		if c.Dataset.Table == "" {
			return fmt.Errorf("DATASET_TABLE is required for the postgres dataset source")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, xlsx, http, postgres")
	}

	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT and SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Dataset.CurrentYear < 0 {
		return fmt.Errorf("DATASET_CURRENT_YEAR must be >= 0")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
