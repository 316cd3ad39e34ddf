package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Match simulation metrics

	MatchesSimulatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_sim_matches_total",
			Help: "Total number of matches simulated, by map and winner side",
		},
		[]string{"map", "winner"},
	)

	MatchSimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "match_sim_duration_seconds",
			Help:    "Wall-clock time spent running a single simulateMatch call",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"map"},
	)

	RoundsSimulatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_sim_rounds_total",
			Help: "Total number of rounds simulated, by outcome and side",
		},
		[]string{"outcome", "winner"},
	)

	RoundsPerMatch = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_sim_rounds_per_match",
			Help:    "Number of rounds played before a match terminates",
			Buckets: []float64{13, 16, 19, 22, 24},
		},
	)

	PlayersGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_sim_players_generated_total",
			Help: "Total number of players produced by the generator, by primary role",
		},
		[]string{"role"},
	)

	PlayerGenerationRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_sim_player_generation_rejections_total",
			Help: "Total number of player generation requests rejected by validation, by field",
		},
		[]string{"field"},
	)

	MapFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_sim_map_fallbacks_total",
			Help: "Total number of simulateMatch calls that fell back to the synthetic map catalog entry",
		},
		[]string{"requested_map"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		start := time.Now()
		wrapped := newResponseWriter(w)

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(wrapped.statusCode)
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func normalizePath(path string) string {
	if len(path) > 50 {
		return path[:50]
	}
	return path
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordDBOperation(operation, collection string, duration time.Duration) {
	DatabaseOperationDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
}

// RecordMatch records the terminal outcome of a simulateMatch call.
func RecordMatch(mapName, winner string, duration time.Duration, rounds int) {
	MatchesSimulatedTotal.WithLabelValues(mapName, winner).Inc()
	MatchSimulationDuration.WithLabelValues(mapName).Observe(duration.Seconds())
	RoundsPerMatch.Observe(float64(rounds))
}

// RecordRound records the outcome of a single round within a match.
func RecordRound(outcome, winner string) {
	RoundsSimulatedTotal.WithLabelValues(outcome, winner).Inc()
}

func RecordPlayerGenerated(role string) {
	PlayersGeneratedTotal.WithLabelValues(role).Inc()
}

func RecordPlayerGenerationRejection(field string) {
	PlayerGenerationRejectionsTotal.WithLabelValues(field).Inc()
}

func RecordMapFallback(requestedMap string) {
	MapFallbacksTotal.WithLabelValues(requestedMap).Inc()
}
