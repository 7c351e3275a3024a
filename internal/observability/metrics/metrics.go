package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	claimsCounter                *prometheus.CounterVec
	chainCallDurationHistogram   *prometheus.HistogramVec
	lockStoreFailureCounter      *prometheus.CounterVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	claimsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faucet_claims_total",
			Help: "Total number of claim requests by network and outcome.",
		},
		[]string{"network", "outcome"},
	)

	chainCallDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "faucet_chain_call_duration_seconds",
			Help:    "Histogram of chain call durations in seconds, dispatch included.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"network", "method", "outcome"},
	)

	lockStoreFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faucet_lock_store_failures_total",
			Help: "Total number of swallowed lock store failures by operation.",
		},
		[]string{"operation"},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		claimsCounter,
		chainCallDurationHistogram,
		lockStoreFailureCounter,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		if httpRequestDurationHistogram == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// RecordClaimOutcome counts one finished claim request. The outcome label is
// the terminal error code, or "success".
func RecordClaimOutcome(network, outcome string) {
	if claimsCounter == nil {
		return
	}
	claimsCounter.WithLabelValues(network, outcome).Inc()
}

// StartChainCallDurationTimer starts a timer to measure one outbound chain call.
func StartChainCallDurationTimer(network, method string) func(outcome Outcome) {
	startTime := time.Now()
	return func(outcome Outcome) {
		if chainCallDurationHistogram == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		chainCallDurationHistogram.WithLabelValues(network, method, outcome.String()).Observe(duration)
	}
}

// RecordLockStoreFailure counts a swallowed best-effort lock store failure.
func RecordLockStoreFailure(operation string) {
	if lockStoreFailureCounter == nil {
		return
	}
	lockStoreFailureCounter.WithLabelValues(operation).Inc()
}
