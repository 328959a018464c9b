package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/WellnessQuest_Go/internal/logger"
	"github.com/osse101/WellnessQuest_Go/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for the admin dashboard
type AdminMetricsResponse struct {
	HTTP    HTTPMetrics    `json:"http"`
	Events  EventMetrics   `json:"events"`
	Game    GameMetrics    `json:"game"`
	Storage StorageMetrics `json:"storage"`
	Stream  StreamMetrics  `json:"stream"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type EventMetrics struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
	HandlerErrorsByType  map[string]float64 `json:"handler_errors_by_type"`
}

type GameMetrics struct {
	MissionsByCategory map[string]float64 `json:"missions_by_category"`
	HeartsEarned       float64            `json:"hearts_earned"`
	PetFeeds           float64            `json:"pet_feeds"`
	DayRollovers       float64            `json:"day_rollovers"`
	Onboardings        float64            `json:"onboardings"`
	ActiveProfiles     float64            `json:"active_profiles"`
}

type StorageMetrics struct {
	ErrorsByOperation map[string]float64 `json:"errors_by_operation"`
	FallbacksByReason map[string]float64 `json:"fallbacks_by_reason"`
}

type StreamMetrics struct {
	ClientCount int `json:"client_count"`
}

// ClientCounter reports how many stream clients are connected
type ClientCounter interface {
	TotalClients() int
}

// AdminMetricsHandler handles admin metrics requests
type AdminMetricsHandler struct {
	gatherer prometheus.Gatherer
	clients  ClientCounter
}

// NewAdminMetricsHandler creates a handler reading the default Prometheus registry
func NewAdminMetricsHandler(clients ClientCounter) *AdminMetricsHandler {
	return NewAdminMetricsHandlerWithGatherer(prometheus.DefaultGatherer, clients)
}

// NewAdminMetricsHandlerWithGatherer creates a handler reading from gatherer
func NewAdminMetricsHandlerWithGatherer(gatherer prometheus.Gatherer, clients ClientCounter) *AdminMetricsHandler {
	return &AdminMetricsHandler{gatherer: gatherer, clients: clients}
}

// HandleGetMetrics returns JSON-formatted metrics from Prometheus
// @Summary Metrics summary
// @Description Summarizes the Prometheus registry for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/metrics [get]
func (h *AdminMetricsHandler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	resp, err := gatherMetrics(h.gatherer)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgGatherMetricsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGatherMetricsFailed)
		return
	}

	if h.clients != nil {
		resp.Stream.ClientCount = h.clients.TotalClients()
	}

	respondJSON(w, http.StatusOK, resp)
}

func gatherMetrics(gatherer prometheus.Gatherer) (*AdminMetricsResponse, error) {
	metricFamilies, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP:    HTTPMetrics{RequestsTotalByStatus: make(map[string]float64)},
		Events:  EventMetrics{PublishedTotalByType: make(map[string]float64), HandlerErrorsByType: make(map[string]float64)},
		Game:    GameMetrics{MissionsByCategory: make(map[string]float64)},
		Storage: StorageMetrics{ErrorsByOperation: make(map[string]float64), FallbacksByReason: make(map[string]float64)},
	}

	var latency latencyAccumulator
	for _, mf := range metricFamilies {
		series := mf.GetMetric()
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumByLabel(series, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			for _, m := range series {
				latency.add(m.GetHistogram())
			}
		case metrics.MetricNameHTTPRequestsInFlight:
			resp.HTTP.InFlight = sumGauges(series)
		case metrics.MetricNameEventsPublished:
			sumByLabel(series, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameEventHandlerErrors:
			sumByLabel(series, metrics.LabelType, resp.Events.HandlerErrorsByType)
		case metrics.MetricNameMissionsCompleted:
			sumByLabel(series, metrics.LabelCategory, resp.Game.MissionsByCategory)
		case metrics.MetricNameHeartsEarned:
			resp.Game.HeartsEarned = sumCounters(series)
		case metrics.MetricNamePetFeeds:
			resp.Game.PetFeeds = sumCounters(series)
		case metrics.MetricNameDayRollovers:
			resp.Game.DayRollovers = sumCounters(series)
		case metrics.MetricNameOnboardings:
			resp.Game.Onboardings = sumCounters(series)
		case metrics.MetricNameActiveProfiles:
			resp.Game.ActiveProfiles = sumGauges(series)
		case metrics.MetricNameStorageErrors:
			sumByLabel(series, metrics.LabelOperation, resp.Storage.ErrorsByOperation)
		case metrics.MetricNameStateFallbacks:
			sumByLabel(series, metrics.LabelReason, resp.Storage.FallbacksByReason)
		}
	}

	resp.HTTP.AvgLatencyMs = latency.average() * 1000
	resp.HTTP.P95LatencyMs = latency.quantile(0.95) * 1000
	return resp, nil
}

func sumByLabel(series []*dto.Metric, label string, into map[string]float64) {
	for _, m := range series {
		if v := getLabelValue(m, label); v != "" {
			into[v] += m.GetCounter().GetValue()
		}
	}
}

func sumCounters(series []*dto.Metric) float64 {
	var total float64
	for _, m := range series {
		total += m.GetCounter().GetValue()
	}
	return total
}

func sumGauges(series []*dto.Metric) float64 {
	var total float64
	for _, m := range series {
		total += m.GetGauge().GetValue()
	}
	return total
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// latencyAccumulator merges the per-route histograms, which share bucket bounds
type latencyAccumulator struct {
	count   uint64
	sum     float64
	bounds  []float64
	buckets []uint64
}

func (a *latencyAccumulator) add(hist *dto.Histogram) {
	if hist == nil {
		return
	}
	a.count += hist.GetSampleCount()
	a.sum += hist.GetSampleSum()

	for i, b := range hist.GetBucket() {
		if i >= len(a.bounds) {
			a.bounds = append(a.bounds, b.GetUpperBound())
			a.buckets = append(a.buckets, 0)
		}
		a.buckets[i] += b.GetCumulativeCount()
	}
}

func (a *latencyAccumulator) average() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// quantile approximates the given quantile by the first bucket bound reaching it
func (a *latencyAccumulator) quantile(q float64) float64 {
	if a.count == 0 {
		return 0
	}

	target := float64(a.count) * q
	for i, cumulative := range a.buckets {
		if float64(cumulative) >= target {
			return a.bounds[i]
		}
	}

	if len(a.bounds) > 0 {
		return a.bounds[len(a.bounds)-1]
	}
	return 0
}
