package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	transactionsDeleted prometheus.Counter
	budgetsSaved        *prometheus.CounterVec
	budgetAlertsActive  prometheus.Gauge
	loginAttempts       *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of ledger entries created",
			},
			[]string{"type"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of ledger entries deleted",
			},
		),
		budgetsSaved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_saved_total",
				Help: "Total number of budget upserts",
			},
			[]string{"category"},
		),
		budgetAlertsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_alerts_active",
				Help: "Number of budget alerts at the last evaluation",
			},
		),
		loginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of owner login attempts",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_created":
		if txType := tags["type"]; txType != "" {
			m.transactionsCreated.WithLabelValues(txType).Inc()
		}
	case "transaction_deleted":
		m.transactionsDeleted.Inc()
	case "budget_saved":
		if category := tags["category"]; category != "" {
			m.budgetsSaved.WithLabelValues(category).Inc()
		}
	case "login_attempt":
		if status := tags["status"]; status != "" {
			m.loginAttempts.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64) {
	switch name {
	case "budget_alerts_active":
		m.budgetAlertsActive.Set(value)
	}
}
