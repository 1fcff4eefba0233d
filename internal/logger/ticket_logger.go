package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/clever-tickets/internal/models"
)

// TicketLogger provides dedicated logging for ticket construction.
type TicketLogger struct {
	*logrus.Entry
}

// NewTicketLogger creates a new ticket logger.
func NewTicketLogger(baseLogger *logrus.Logger) *TicketLogger {
	return &TicketLogger{
		Entry: baseLogger.WithField("component", "ticket"),
	}
}

// LogTicketBuilt logs a completed ticket.
func (tl *TicketLogger) LogTicketBuilt(ticket *models.Ticket) {
	primary := ticket.Primary()
	tl.WithFields(logrus.Fields{
		"ticket_id":            ticket.ID.String(),
		"strategy":             ticket.Strategy,
		"legs":                 ticket.Legs(),
		"primary_match_id":     primary.MatchID,
		"primary_market":       string(primary.Key),
		"combined_odds":        ticket.CombinedOdds,
		"combined_probability": ticket.CombinedProbability,
		"combined_confidence":  ticket.CombinedConfidence,
		"kelly_fraction":       ticket.KellyFraction,
		"kelly_capped":         ticket.KellyCapped,
		"stake":                ticket.Stake.StringFixed(2),
		"potential_return":     ticket.PotentialReturn.StringFixed(2),
	}).Info("Ticket built")
}

// LogHedgeDecision logs which leg was added after the primary and why.
func (tl *TicketLogger) LogHedgeDecision(leg int, matchID string, wanted, chosen models.MarketKey, reason string) {
	tl.WithFields(logrus.Fields{
		"leg":      leg,
		"match_id": matchID,
		"wanted":   string(wanted),
		"chosen":   string(chosen),
		"reason":   reason,
	}).Debug("Hedge leg chosen")
}

// LogNoEligibleSelections logs a strategy that filtered out every candidate.
func (tl *TicketLogger) LogNoEligibleSelections(strategyName string, candidates int, minConfidence, maxOdds float64) {
	tl.WithFields(logrus.Fields{
		"strategy":       strategyName,
		"candidates":     candidates,
		"min_confidence": minConfidence,
		"max_odds":       maxOdds,
	}).Warn("No eligible selections for strategy")
}

// LogValueBets logs the value bets found for a match.
func (tl *TicketLogger) LogValueBets(matchID string, bets []models.ValueBet) {
	best := 0.0
	if len(bets) > 0 {
		best = bets[0].Edge
	}
	tl.WithFields(logrus.Fields{
		"match_id":   matchID,
		"value_bets": len(bets),
		"best_edge":  best,
	}).Info("Value bets evaluated")
}
