package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backends supported by DATA_BACKEND
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the server configuration
type Config struct {
	// gRPC server
	GRPCAddr string
	APIToken string

	// Storage
	DataBackend    string
	DBConnStr      string
	MigrateOnStart bool
	SeedAssets     bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment.
// Variables from a .env file in the working directory (or the given files) are loaded first
// and never override variables already set.
func Load(envFiles ...string) *Config {
	// A missing .env file is fine: the environment alone is a valid source
	_ = godotenv.Load(envFiles...)

	return &Config{
		GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		APIToken: getEnv("API_TOKEN", "dev-token"),

		DataBackend:    strings.ToLower(getEnv("DATA_BACKEND", BackendMemory)),
		DBConnStr:      dbConnString(),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),
		SeedAssets:     getEnvBool("SEED_ASSETS", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// dbConnString returns DB_CONN_STR, or builds it from individual vars (Docker friendly)
func dbConnString() string {
	if conn := os.Getenv("DB_CONN_STR"); conn != "" {
		return conn
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "walletledger"),
	)
}

// Validate validates the configuration and returns an error listing every problem
func (c *Config) Validate() error {
	var problems []string

	if _, port, err := net.SplitHostPort(c.GRPCAddr); err != nil {
		problems = append(problems, fmt.Sprintf("invalid GRPC_ADDR '%s': %v", c.GRPCAddr, err))
	} else if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		problems = append(problems, fmt.Sprintf("invalid GRPC_ADDR port '%s': must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.APIToken) == "" {
		problems = append(problems, "API_TOKEN cannot be empty")
	}

	switch c.DataBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBConnStr == "" {
			problems = append(problems, "database connection string cannot be empty when using postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendMemory, BackendPostgres))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
