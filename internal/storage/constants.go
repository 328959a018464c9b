package storage

import "time"

// Error messages
const (
	ErrMsgNotFound       = "key not found"
	ErrMsgOpenFailed     = "failed to open key/value store"
	ErrMsgSchemaFailed   = "failed to create key/value schema"
	ErrMsgUnknownBackend = "unknown storage backend"
	ErrMsgGetFailed      = "failed to read key"
	ErrMsgSetFailed      = "failed to write key"
	ErrMsgRemoveFailed   = "failed to remove keys"
)

// Backend names
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Key layout
const (
	ProfileKeyPrefix = "profile/"
	KeySeparator     = "/"
)

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// SQLite settings
const (
	SQLiteDriverName  = "sqlite"
	SQLiteDirPerm     = 0755
	SQLiteBusyTimeout = "_pragma=busy_timeout(5000)"
	SQLiteJournalMode = "_pragma=journal_mode(WAL)"
)
