package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	// DriverMySQL is the default tenant database driver
	DriverMySQL = "mysql"
	// DriverPostgres targets deployments where each tenant is a Postgres schema
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	OTEL     OTELConfig
	Redis    RedisConfig
	Lock     LockConfig
	Events   EventsConfig
	Seed     SeedConfig
}

// DatabaseConfig holds database configuration. Schema is never read from the
// environment; it comes from the command line through WithSchema.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Schema   string
	SSLMode  string
	PoolSize int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	Env    string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LockConfig controls the optional per-tenant run lock
type LockConfig struct {
	Enabled bool
	TTL     time.Duration
}

// EventsConfig controls the optional run-completed notification
type EventsConfig struct {
	Enabled bool
	Channel string
}

// SeedConfig holds reference-data options
type SeedConfig struct {
	DataFile   string
	RandomSeed int64
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present; real environment
// variables always win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	driver := getEnv("DB_DRIVER", DriverMySQL)
	if driver != DriverMySQL && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", driver, DriverMySQL, DriverPostgres)
	}
	defaultPort := 3306
	if driver == DriverPostgres {
		defaultPort = 5432
	}

	return &Config{
		Database: DatabaseConfig{
			Driver:   driver,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", defaultPort),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "practice"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			PoolSize: getEnvAsInt("DB_POOL_SIZE", 5),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			Env:    getEnv("APP_ENV", "development"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "tenant-seeder"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Lock: LockConfig{
			Enabled: getEnvAsBool("SEED_LOCK_ENABLED", false),
			TTL:     time.Duration(getEnvAsInt("SEED_LOCK_TTL", 900)) * time.Second,
		},
		Events: EventsConfig{
			Enabled: getEnvAsBool("SEED_EVENTS_ENABLED", false),
			Channel: getEnv("SEED_EVENTS_CHANNEL", "tenant-seeder:runs"),
		},
		Seed: SeedConfig{
			DataFile:   getEnv("SEED_DATA_FILE", ""),
			RandomSeed: int64(getEnvAsInt("SEED_RANDOM_SEED", 0)),
		},
	}, nil
}

// WithSchema returns a copy of the configuration targeting the given tenant schema
func (c DatabaseConfig) WithSchema(schema string) DatabaseConfig {
	c.Schema = schema
	return c
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return c.PostgresDSN()
	}
	return c.MySQLDSN()
}

// MySQLDSN returns the MySQL connection string. The tenant schema is the
// MySQL database the connection opens.
func (c *DatabaseConfig) MySQLDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Schema
	mc.ParseTime = true
	return mc.FormatDSN()
}

// PostgresDSN returns the PostgreSQL connection string with the tenant
// schema first on the search path
func (c *DatabaseConfig) PostgresDSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	if c.Schema != "" {
		query.Set("search_path", c.Schema)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
