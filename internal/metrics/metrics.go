package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	MissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsCompleted,
			Help: HelpTextMissionsCompleted,
		},
		[]string{LabelCategory},
	)

	HeartsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHeartsEarned,
			Help: HelpTextHeartsEarned,
		},
	)

	PetFeeds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetFeeds,
			Help: HelpTextPetFeeds,
		},
	)

	DayRollovers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDayRollovers,
			Help: HelpTextDayRollovers,
		},
	)

	Onboardings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOnboardings,
			Help: HelpTextOnboardings,
		},
	)

	DemoApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDemoApplied,
			Help: HelpTextDemoApplied,
		},
	)

	ProfileResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileResets,
			Help: HelpTextProfileResets,
		},
	)

	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveProfiles,
			Help: HelpTextActiveProfiles,
		},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	RolloverSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRolloverSweeps,
			Help: HelpTextRolloverSweeps,
		},
	)
)

// Persistence Metrics
var (
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageErrors,
			Help: HelpTextStorageErrors,
		},
		[]string{LabelOperation, LabelKey},
	)

	StateFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateFallbacks,
			Help: HelpTextStateFallbacks,
		},
		[]string{LabelReason},
	)
)
