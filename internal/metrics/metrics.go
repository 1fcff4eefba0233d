// Package metrics provides centralized Prometheus metrics registry for the ticket pipeline.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "clever_tickets"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Analysis counters
var (
	TablesDerivedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "market_tables_derived_total",
		Help:      "Total number of market tables derived",
	})
	DerivationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "derivation_failures_total",
		Help:      "Total number of failed market derivations by reason",
	}, []string{"reason"})
	ValueBetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "value_bets_total",
		Help:      "Total number of value bets found by market",
	}, []string{"market"})
)

// Analysis histograms
var (
	DerivationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "derivation_duration_seconds",
		Help:      "Duration of market table derivation in seconds",
		Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
	})
	ValueBetEdge = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "value_bet_edge",
		Help:      "Edge of value bets over fair odds",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.15, 0.2, 0.3, 0.5, 1.0},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register analysis metrics
		registry.MustRegister(TablesDerivedTotal)
		registry.MustRegister(DerivationFailuresTotal)
		registry.MustRegister(ValueBetsTotal)
		registry.MustRegister(DerivationDuration)
		registry.MustRegister(ValueBetEdge)

		// Register ticket metrics
		registry.MustRegister(TicketsBuiltTotal)
		registry.MustRegister(TicketFailuresTotal)
		registry.MustRegister(TicketStake)
		registry.MustRegister(TicketCombinedOdds)

		// Register cache metrics
		registry.MustRegister(CacheLookupsTotal)
		registry.MustRegister(CacheEntries)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// WriteTextfile writes the current registry contents in the text exposition format
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, GetRegistry())
}

// RecordTableDerived records a derived market table.
func RecordTableDerived(durationSeconds float64) {
	TablesDerivedTotal.Inc()
	DerivationDuration.Observe(durationSeconds)
}

// RecordDerivationFailure records a failed derivation.
// reason should be one of: "invalid_input", "out_of_range", "unknown"
func RecordDerivationFailure(reason string) {
	DerivationFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordValueBet records a value bet and its edge.
func RecordValueBet(market string, edge float64) {
	ValueBetsTotal.WithLabelValues(market).Inc()
	ValueBetEdge.Observe(edge)
}
