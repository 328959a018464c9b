package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/WellnessQuest_Go/internal/database"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	StorageBackend string
	SQLitePath     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CacheSize int
	CacheTTL  time.Duration

	// Location is where day boundaries are drawn
	Location           *time.Location
	MissionCatalogPath string
	// RandomSeed fixes mission backfill when non-zero
	RandomSeed     int64
	DeadLetterPath string
	WorkerCount    int

	// APIKey guards /api when set
	APIKey string
	// TrustedProxies may report the client address in X-Forwarded-For
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:          getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:        getEnv(EnvServiceName, DefaultServiceName),
		Version:            getEnv(EnvVersion, DefaultVersion),
		StorageBackend:     strings.ToLower(getEnv(EnvStorageBackend, DefaultStorageBackend)),
		SQLitePath:         getEnv(EnvSQLitePath, DefaultSQLitePath),
		DBUser:             getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:         getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:             getEnv(EnvDBHost, DefaultDBHost),
		DBPort:             getEnv(EnvDBPort, DefaultDBPort),
		DBName:             getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:          getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		DBMaxConns:         getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime:  getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime:  getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		CacheSize:          getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:           getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		MissionCatalogPath: getEnv(EnvMissionCatalogPath, ""),
		DeadLetterPath:     getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		WorkerCount:        getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		APIKey:             getEnv(EnvAPIKey, ""),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("%s value: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	loc, err := time.LoadLocation(getEnv(EnvTimezone, DefaultTimezone))
	if err != nil {
		return nil, fmt.Errorf("%s value: %w", ErrMsgInvalidTimezone, err)
	}
	cfg.Location = loc

	if raw := getEnv(EnvRandomSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s value: %w", ErrMsgInvalidRandomSeed, err)
		}
		cfg.RandomSeed = seed
	}

	return cfg, nil
}

// Validate reports every setting the server cannot start with
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s, got %d", ErrMsgPortOutOfRange, c.Port))
	}
	if !slices.Contains(StorageBackends, c.StorageBackend) {
		errs = append(errs, fmt.Errorf("%s %s, got %q", ErrMsgUnknownStorageBackend, strings.Join(StorageBackends, "|"), c.StorageBackend))
	}
	if c.StorageBackend == StorageSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New(ErrMsgSQLitePathRequired))
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("%s, got %q", ErrMsgUnknownLogFormat, c.LogFormat))
	}
	if c.CacheSize <= 0 {
		errs = append(errs, errors.New(ErrMsgCacheSize))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, errors.New(ErrMsgWorkerCount))
	}
	if c.IsProduction() && c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequiredInProd))
	}
	return errors.Join(errs...)
}

// Warnings returns non-fatal problems, like example values left in place
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the API accepts unauthenticated requests")
	}
	return warnings
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	return slices.Contains(productionEnvironments, strings.ToLower(c.Environment))
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PoolConfig returns the postgres pool limits
func (c *Config) PoolConfig() database.PoolConfig {
	return database.PoolConfig{
		MaxConns:    c.DBMaxConns,
		MaxIdleTime: c.DBMaxConnIdleTime,
		MaxLifetime: c.DBMaxConnLifetime,
	}
}

// LoggerConfig returns the logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		ServiceName: c.ServiceName,
		Version:     c.Version,
		Environment: c.Environment,
		AddSource:   !c.IsProduction() && strings.EqualFold(c.LogLevel, "debug"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
