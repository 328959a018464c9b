package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidProfileID = "Invalid profile id"
	ErrMsgInvalidMissionID = "Invalid mission id"

	// Readiness
	ErrMsgStorageUnavailable = "storage unavailable"

	// Admin
	ErrMsgRolloverFailed      = "Rollover sweep did not complete"
	ErrMsgGatherMetricsFailed = "Failed to gather metrics"
)

// Success messages for API responses
const (
	MsgProfileReset = "Profile data cleared"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed         = "Failed to decode request"
	LogMsgRequestDecoded       = "Request decoded"
	LogMsgServiceError         = "Service call failed"
	LogMsgReadinessFailed      = "Readiness check failed"
	LogMsgEncodeFailed         = "Failed to encode JSON response"
	LogMsgWriteFailed          = "Failed to write response buffer"
	LogMsgOnboardingRequested  = "Onboarding requested"
	LogMsgManualRolloverFailed = "Manual rollover sweep failed"
	LogMsgGatherMetricsFailed  = "Failed to gather metrics"
)
