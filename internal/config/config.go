package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings normalizes the driver name
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The value is built once at startup, handed to the
// connection factory, and never mutated afterwards.
type Config struct {
	DBDriver string // "mysql" or "sqlite"
	DBUser   string // database username (mysql only)
	DBPass   string // database password (mysql only, optional)
	DBHost   string // database host address (mysql only)
	DBPort   string // database port number (mysql only)
	DBName   string // database name (mysql only)
	DBPath   string // database file path (sqlite only)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. DB_DRIVER defaults
// to sqlite so the tool works with zero setup.
func Load() Config {
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = DriverSQLite
	}

	cfg := Config{DBDriver: driver}
	switch driver {
	case DriverMySQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	case DriverSQLite:
		cfg.DBPath = os.Getenv("DB_PATH")
		if cfg.DBPath == "" {
			cfg.DBPath = "fitclub.db"
		}
	default:
		log.Fatalf("unsupported DB_DRIVER: %q (want %q or %q)", driver, DriverMySQL, DriverSQLite)
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
