package postgres

// Error Messages - key/value operations
const (
	ErrMsgFailedToGetKey     = "failed to read key"
	ErrMsgFailedToSetKey     = "failed to write key"
	ErrMsgFailedToRemoveKeys = "failed to remove keys"
	ErrMsgFailedToListKeys   = "failed to list keys"
)

// SQL statements
const (
	sqlGetKey = `SELECT value FROM kv_store WHERE key = $1`

	sqlSetKey = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	sqlRemoveKeys = `DELETE FROM kv_store WHERE key = ANY($1)`

	sqlListKeys = `SELECT key FROM kv_store WHERE key LIKE $1 ESCAPE '\' ORDER BY key`
)
