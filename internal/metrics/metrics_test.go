package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
	assert.Same(t, registry, InitRegistry())
}

func TestRecordTableDerived(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(TablesDerivedTotal)

	assert.NotPanics(t, func() {
		RecordTableDerived(0.0002)
	})
	assert.Equal(t, before+1, testutil.ToFloat64(TablesDerivedTotal))
}

func TestRecordDerivationFailure(t *testing.T) {
	InitRegistry()

	reasons := []string{"invalid_input", "out_of_range", "unknown"}
	for _, reason := range reasons {
		t.Run(reason, func(t *testing.T) {
			before := testutil.ToFloat64(DerivationFailuresTotal.WithLabelValues(reason))
			RecordDerivationFailure(reason)
			assert.Equal(t, before+1, testutil.ToFloat64(DerivationFailuresTotal.WithLabelValues(reason)))
		})
	}
}

func TestRecordValueBet(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(ValueBetsTotal.WithLabelValues("HOME_WIN"))

	RecordValueBet("HOME_WIN", 0.155)
	assert.Equal(t, before+1, testutil.ToFloat64(ValueBetsTotal.WithLabelValues("HOME_WIN")))
}

func TestRecordTicket(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name     string
		strategy string
		legs     int
		stake    float64
		odds     float64
	}{
		{"single", "balanced", 1, 30, 1.8},
		{"double", "aggressive", 2, 50, 4.2},
		{"zero stake", "value", 1, 0, 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordTicketBuilt(tt.strategy, tt.legs, tt.stake, tt.odds)
			})
		})
	}

	before := testutil.ToFloat64(TicketFailuresTotal.WithLabelValues("conservative", "no_eligible_selections"))
	RecordTicketFailure("conservative", "no_eligible_selections")
	assert.Equal(t, before+1, testutil.ToFloat64(TicketFailuresTotal.WithLabelValues("conservative", "no_eligible_selections")))
}

func TestCacheMetrics(t *testing.T) {
	InitRegistry()

	hits := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("miss"))

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)
	UpdateCacheEntries(7)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("miss")))
	assert.Equal(t, float64(7), testutil.ToFloat64(CacheEntries))
}

func TestWriteTextfile(t *testing.T) {
	InitRegistry()
	RecordTableDerived(0.0001)

	path := filepath.Join(t.TempDir(), "clever_tickets.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "clever_tickets_market_tables_derived_total")
}
