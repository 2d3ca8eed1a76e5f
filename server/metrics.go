package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus metrics the server exposes at /metrics.
type Metrics struct {
	rollsTotal        *prometheus.CounterVec
	chatMessages      *prometheus.CounterVec
	wsConnections     prometheus.Gauge
	rollBudgetHits    prometheus.Counter
	registry          *prometheus.Registry
}

// NewMetrics creates and registers the server's Prometheus metrics on a
// fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		rollsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dicechat_rolls_total",
				Help: "Total number of dice expressions evaluated, by outcome.",
			},
			[]string{"outcome"},
		),
		chatMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dicechat_chat_messages_total",
				Help: "Total number of chat messages rendered, by room.",
			},
			[]string{"room"},
		),
		wsConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dicechat_websocket_connections_active",
				Help: "Number of currently connected WebSocket clients.",
			},
		),
		rollBudgetHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dicechat_roll_budget_exceeded_total",
				Help: "Total number of evaluations that hit the roll budget ceiling.",
			},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.rollsTotal,
		m.chatMessages,
		m.wsConnections,
		m.rollBudgetHits,
	)
	return m
}
