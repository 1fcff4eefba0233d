package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Ticket counter vectors
var (
	TicketsBuiltTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_built_total",
		Help:      "Total number of tickets built by strategy and leg count",
	}, []string{"strategy", "legs"})

	TicketFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_failures_total",
		Help:      "Total number of failed ticket builds by strategy and reason",
	}, []string{"strategy", "reason"})
)

// Ticket histogram vectors
var (
	TicketStake = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ticket_stake",
		Help:      "Stake of built tickets in currency units",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"strategy"})

	TicketCombinedOdds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ticket_combined_odds",
		Help:      "Combined odds of built tickets",
		Buckets:   []float64{1.25, 1.5, 2, 3, 5, 8, 13, 21},
	}, []string{"strategy"})
)

// RecordTicketBuilt records a built ticket.
func RecordTicketBuilt(strategy string, legs int, stake, combinedOdds float64) {
	TicketsBuiltTotal.WithLabelValues(strategy, strconv.Itoa(legs)).Inc()
	TicketStake.WithLabelValues(strategy).Observe(stake)
	TicketCombinedOdds.WithLabelValues(strategy).Observe(combinedOdds)
}

// RecordTicketFailure records a ticket build that returned an error.
// reason should be one of: "no_eligible_selections", "invalid_bankroll", "invalid_input", "unknown"
func RecordTicketFailure(strategy, reason string) {
	TicketFailuresTotal.WithLabelValues(strategy, reason).Inc()
}
