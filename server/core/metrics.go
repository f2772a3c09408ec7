package core

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "gggames"

// Metrics are the server's Prometheus collectors.
type Metrics struct {
	requests     *prometheus.CounterVec
	joins        *prometheus.CounterVec
	players      prometheus.Gauge
	tickDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "action_requests_total",
			Help:      "Action requests handled by the server, by action and result.",
		}, []string{"action", "result"}),
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "joins_total",
			Help:      "Join requests, by result.",
		}, []string{"result"}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "players",
			Help:      "Characters currently in the arena.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one server tick.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}
	reg.MustRegister(m.requests, m.joins, m.players, m.tickDuration)
	return m
}

func (m *Metrics) observeRequest(action string, accepted bool) {
	result := "dropped"
	if accepted {
		result = "accepted"
	}
	m.requests.WithLabelValues(action, result).Inc()
}

func (m *Metrics) observeJoin(result string) {
	m.joins.WithLabelValues(result).Inc()
}

func (m *Metrics) setPlayers(n int) {
	m.players.Set(float64(n))
}

func (m *Metrics) observeTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
