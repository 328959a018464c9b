package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvStorageBackend     = "STORAGE_BACKEND"
	EnvSQLitePath         = "SQLITE_PATH"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBSSLMode          = "DB_SSLMODE"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime  = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvCacheSize          = "CACHE_SIZE"
	EnvCacheTTL           = "CACHE_TTL"
	EnvTimezone           = "TIMEZONE"
	EnvMissionCatalogPath = "MISSION_CATALOG_PATH"
	EnvRandomSeed         = "RANDOM_SEED"
	EnvDeadLetterPath     = "DEAD_LETTER_PATH"
	EnvWorkerCount        = "WORKER_COUNT"
	EnvAPIKey             = "API_KEY"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "wellness-quest"
	DefaultVersion           = "dev"
	DefaultStorageBackend    = StorageSQLite
	DefaultSQLitePath        = "data/wellness.db"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "wellnessquest"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCacheSize         = 1024
	DefaultCacheTTL          = 5 * time.Minute
	DefaultTimezone          = "UTC"
	DefaultDeadLetterPath    = "logs/deadletter.jsonl"
	DefaultWorkerCount       = 4
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// StorageBackends lists the accepted STORAGE_BACKEND values
var StorageBackends = []string{StorageMemory, StorageSQLite, StoragePostgres}

// Environments treated as production
var productionEnvironments = []string{"prod", "production"}

// Values copied from .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgInvalidPort           = "invalid PORT"
	ErrMsgInvalidTimezone       = "invalid TIMEZONE"
	ErrMsgInvalidRandomSeed     = "invalid RANDOM_SEED"
	ErrMsgPortOutOfRange        = "PORT must be between 1 and 65535"
	ErrMsgUnknownStorageBackend = "STORAGE_BACKEND must be one of"
	ErrMsgUnknownLogFormat      = "LOG_FORMAT must be text or json"
	ErrMsgCacheSize             = "CACHE_SIZE must be positive"
	ErrMsgWorkerCount           = "WORKER_COUNT must be positive"
	ErrMsgSQLitePathRequired    = "SQLITE_PATH must be set for the sqlite backend"
	ErrMsgAPIKeyRequiredInProd  = "API_KEY must be set in production"
)
