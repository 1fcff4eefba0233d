package logger

import (
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides dedicated logging for market derivation runs.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogMatchAnalyzed logs a derived market table.
func (al *AnalysisLogger) LogMatchAnalyzed(matchID string, marketsDerived, valueBets int, cacheHit bool, latencyMs float64) {
	al.WithFields(logrus.Fields{
		"match_id":        matchID,
		"markets_derived": marketsDerived,
		"value_bets":      valueBets,
		"cache_hit":       cacheHit,
		"latency_ms":      latencyMs,
	}).Debug("Match analyzed")
}

// LogBatchAnalyzed logs the outcome of a batch analysis.
func (al *AnalysisLogger) LogBatchAnalyzed(matches, workers int, latencyMs float64) {
	al.WithFields(logrus.Fields{
		"matches":    matches,
		"workers":    workers,
		"latency_ms": latencyMs,
	}).Info("Batch analysis completed")
}

// LogAnalysisFailed logs a match whose inputs could not be turned into a market table.
func (al *AnalysisLogger) LogAnalysisFailed(matchID string, err error) {
	al.WithFields(logrus.Fields{
		"match_id": matchID,
	}).WithError(err).Error("Match analysis failed")
}
