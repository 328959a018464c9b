package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameMissionsCompleted = "missions_completed_total"
	MetricNameHeartsEarned      = "hearts_earned_total"
	MetricNamePetFeeds          = "pet_feeds_total"
	MetricNameDayRollovers      = "day_rollovers_total"
	MetricNameOnboardings       = "onboardings_completed_total"
	MetricNameDemoApplied       = "demo_data_applied_total"
	MetricNameProfileResets     = "profile_resets_total"
	MetricNameActiveProfiles    = "active_profiles"
	MetricNameStreamClients     = "stream_clients"
	MetricNameRolloverSweeps    = "daily_rollover_sweeps_total"
)

// Persistence metric names
const (
	MetricNameStorageErrors  = "storage_errors_total"
	MetricNameStateFallbacks = "game_state_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextMissionsCompleted = "Total number of daily missions completed"
	HelpTextHeartsEarned      = "Total hearts earned from missions"
	HelpTextPetFeeds          = "Total number of successful pet feeds"
	HelpTextDayRollovers      = "Total number of per-profile day rollovers"
	HelpTextOnboardings       = "Total number of completed onboardings"
	HelpTextDemoApplied       = "Total number of times demo data was applied"
	HelpTextProfileResets     = "Total number of profile resets"
	HelpTextActiveProfiles    = "Number of recently active profiles"
	HelpTextStreamClients     = "Number of connected state stream clients"
	HelpTextRolloverSweeps    = "Total number of scheduled daily rollover sweeps"
)

// Persistence metric help text
const (
	HelpTextStorageErrors  = "Total number of masked storage failures"
	HelpTextStateFallbacks = "Total number of loads that fell back to a default game state"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelCategory  = "category"
	LabelOperation = "operation"
	LabelKey       = "key"
	LabelReason    = "reason"
)

// Fallback reasons
const (
	ReasonMissing   = "missing"
	ReasonMalformed = "malformed"
	ReasonInvalid   = "invalid"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnreadable = "Event payload could not be decoded"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
