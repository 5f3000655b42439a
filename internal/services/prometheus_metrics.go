package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricTransactionCreated  = "transaction_created"
	MetricSubCategoryCreated  = "sub_category_created"
	MetricUserProvisioned     = "user_provisioned"
	MetricStatsRequest        = "stats_request"
	MetricCacheHit            = "cache_hit"
	MetricCacheMiss           = "cache_miss"
	MetricStatsDuration       = "stats_duration"
	MetricDashboardDuration   = "dashboard_duration"
	MetricRecentTransactions  = "recent_transactions"
	MetricDashboardDegraded   = "dashboard_degraded"
	MetricCategoriesAvailable = "categories_available"
)

type PrometheusMetrics struct {
	transactionsCreated  *prometheus.CounterVec
	subCategoriesCreated prometheus.Counter
	usersProvisioned     prometheus.Counter
	statsRequests        *prometheus.CounterVec
	cacheLookups         *prometheus.CounterVec
	dashboardDegraded    *prometheus.CounterVec
	statsDuration        prometheus.Histogram
	dashboardDuration    prometheus.Histogram
	recentTransactions   prometheus.Histogram
	categoriesAvailable  prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		subCategoriesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_sub_categories_created_total",
				Help: "Total number of sub-categories created",
			},
		),
		usersProvisioned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_users_provisioned_total",
				Help: "Total number of local users created from identity provider sessions",
			},
		),
		statsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_stats_requests_total",
				Help: "Total number of monthly stats computations",
			},
			[]string{"status"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_cache_lookups_total",
				Help: "Total number of cache lookups",
			},
			[]string{"cache", "result"},
		),
		dashboardDegraded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_dashboard_degraded_total",
				Help: "Total number of dashboard parts served in their empty state",
			},
			[]string{"part"},
		),
		statsDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_stats_duration_milliseconds",
				Help:    "Monthly stats computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_dashboard_duration_milliseconds",
				Help:    "Dashboard load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		recentTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_recent_transactions_returned",
				Help:    "Number of transactions returned by recent listings",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		categoriesAvailable: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_categories_available",
				Help: "Number of global categories returned by the last listing",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionCreated:
		m.transactionsCreated.WithLabelValues(tags["type"]).Inc()
	case MetricSubCategoryCreated:
		m.subCategoriesCreated.Inc()
	case MetricUserProvisioned:
		m.usersProvisioned.Inc()
	case MetricStatsRequest:
		if status := tags["status"]; status != "" {
			m.statsRequests.WithLabelValues(status).Inc()
		}
	case MetricCacheHit:
		m.cacheLookups.WithLabelValues(tags["cache"], "hit").Inc()
	case MetricCacheMiss:
		m.cacheLookups.WithLabelValues(tags["cache"], "miss").Inc()
	case MetricDashboardDegraded:
		if part := tags["part"]; part != "" {
			m.dashboardDegraded.WithLabelValues(part).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricStatsDuration:
		m.statsDuration.Observe(float64(duration.Milliseconds()))
	case MetricDashboardDuration:
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRecentTransactions:
		m.recentTransactions.Observe(value)
	case MetricCategoriesAvailable:
		m.categoriesAvailable.Set(value)
	}
}
