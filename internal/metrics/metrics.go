package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "connectfour"

type Metrics struct {
	Registry *prometheus.Registry

	movesTotal      *prometheus.CounterVec
	sessionsStarted *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New - builds collectors on a private registry so several instances can coexist in tests.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	that := &Metrics{
		Registry: registry,
		movesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Moves returned, by column.",
			},
			[]string{"column", "source"},
		),
		sessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_started_total",
				Help:      "Model sessions started, by player order.",
			},
			[]string{"player_order"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests handled.",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		that.movesTotal,
		that.sessionsStarted,
		that.requestsTotal,
		that.requestDuration,
	)

	return that
}

// ObserveMove - source is "rest", "websocket" or "model".
func (that *Metrics) ObserveMove(source string, column int) {
	that.movesTotal.WithLabelValues(strconv.Itoa(column), source).Inc()
}

func (that *Metrics) ObserveSessionStarted(playerOrder string) {
	that.sessionsStarted.WithLabelValues(playerOrder).Inc()
}

func (that *Metrics) ObserveRequest(route, method string, status int, seconds float64) {
	that.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	that.requestDuration.WithLabelValues(route, method).Observe(seconds)
}
