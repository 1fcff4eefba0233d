// Package ticket assembles ranked selections into a staked multi-leg ticket.
package ticket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/clever-tickets/internal/logger"
	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/strategy"
)

// ReasonFallback marks a leg taken from the ranked candidates after the preferred pick was unusable
const ReasonFallback = "ranked_fallback"

var ticketNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/yourusername/clever-tickets/ticket"))

// Request describes one ticket to build
type Request struct {
	Strategy strategy.BettingStrategy
	Matches  []strategy.MatchMarkets
	Bankroll decimal.Decimal
	// Legs lowers the leg count below Strategy.MaxSelections when positive
	Legs int
}

// Builder builds tickets
type Builder struct {
	selector *strategy.Selector
	log      *logger.TicketLogger
}

// NewBuilder creates a ticket builder. A nil logger discards output.
func NewBuilder(selector *strategy.Selector, baseLogger *logrus.Logger) *Builder {
	if selector == nil {
		selector = strategy.NewSelector()
	}
	if baseLogger == nil {
		baseLogger = logger.Discard()
	}
	return &Builder{
		selector: selector,
		log:      logger.NewTicketLogger(baseLogger),
	}
}

// Build picks the primary leg, adds the hedge and third legs the strategy
// allows, and prices and stakes the result
func (b *Builder) Build(req Request) (*models.Ticket, error) {
	if err := ValidateBankroll(req.Bankroll); err != nil {
		return nil, err
	}
	if req.Legs < 0 {
		return nil, models.NewValidationError("legs", float64(req.Legs), "must not be negative")
	}

	maxLegs := req.Strategy.MaxSelections
	if req.Legs > 0 && req.Legs < maxLegs {
		maxLegs = req.Legs
	}
	if maxLegs < 1 {
		maxLegs = 1
	}

	candidates, err := b.selector.Candidates(req.Matches)
	if err != nil {
		return nil, err
	}
	ranked := strategy.Rank(req.Strategy, candidates)
	if len(ranked) == 0 {
		b.log.LogNoEligibleSelections(req.Strategy.Name, len(candidates), req.Strategy.MinConfidence, req.Strategy.MaxOdds)
		return nil, &models.NoEligibleSelectionsError{
			Strategy:      req.Strategy.Name,
			MinConfidence: req.Strategy.MinConfidence,
			MaxOdds:       req.Strategy.MaxOdds,
			Considered:    len(candidates),
		}
	}

	legs := []models.Selection{ranked[0]}
	primaryMatch := findMatch(req.Matches, ranked[0].MatchID)

	if maxLegs > 1 {
		wanted, reason := HedgeKey(primaryMatch.Table.Outcome)
		if leg, ok := b.addLeg(req.Strategy, primaryMatch.Table.MatchID, wanted, reason, legs, ranked); ok {
			legs = append(legs, leg)
		}
	}
	if maxLegs > 2 && len(legs) == 2 {
		wanted, reason := ThirdLegKey(primaryMatch.Table.GoalModel)
		if leg, ok := b.addLeg(req.Strategy, primaryMatch.Table.MatchID, wanted, reason, legs, ranked); ok {
			legs = append(legs, leg)
		}
	}
	for len(legs) < maxLegs && len(legs) >= 3 {
		leg, ok := nextRanked(req.Strategy, legs, ranked)
		if !ok {
			break
		}
		legs = append(legs, leg)
	}

	ticket := assemble(req, legs)
	b.log.LogTicketBuilt(ticket)
	return ticket, nil
}

// addLeg returns the wanted market of the primary match when the strategy
// accepts it, otherwise the best ranked candidate from a market not yet on the ticket
func (b *Builder) addLeg(strat strategy.BettingStrategy, matchID string, wanted models.MarketKey, reason string, legs, ranked []models.Selection) (models.Selection, bool) {
	position := len(legs) + 1
	for _, c := range ranked {
		if c.MatchID == matchID && c.Key == wanted && fits(strat, legs, c) {
			b.log.LogHedgeDecision(position, matchID, wanted, c.Key, reason)
			return c, true
		}
	}

	leg, ok := nextRanked(strat, legs, ranked)
	if ok {
		b.log.LogHedgeDecision(position, leg.MatchID, wanted, leg.Key, ReasonFallback)
	}
	return leg, ok
}

func nextRanked(strat strategy.BettingStrategy, legs, ranked []models.Selection) (models.Selection, bool) {
	for _, c := range ranked {
		if fits(strat, legs, c) {
			return c, true
		}
	}
	return models.Selection{}, false
}

// fits reports whether c can join the ticket: accepted by the strategy and
// from a market no existing leg uses
func fits(strat strategy.BettingStrategy, legs []models.Selection, c models.Selection) bool {
	if !strat.Accepts(c) {
		return false
	}
	for _, leg := range legs {
		if leg.Market == c.Market || leg.SameLeg(c) {
			return false
		}
	}
	return true
}

func findMatch(matches []strategy.MatchMarkets, matchID string) strategy.MatchMarkets {
	for _, m := range matches {
		if m.Table.MatchID == matchID {
			return m
		}
	}
	return strategy.MatchMarkets{}
}

func assemble(req Request, legs []models.Selection) *models.Ticket {
	combinedOdds, combinedProbability := 1.0, 1.0
	for _, leg := range legs {
		combinedOdds *= leg.Odds
		combinedProbability *= leg.Probability
	}

	sizing := SizeStake(req.Bankroll, req.Strategy.BankrollPercentage, legs[0])
	potentialReturn := sizing.Stake.Mul(decimal.NewFromFloat(combinedOdds)).Round(2)

	return &models.Ticket{
		ID:                  ticketID(req.Strategy.Name, req.Bankroll, legs),
		Strategy:            req.Strategy.Name,
		Selections:          legs,
		CombinedOdds:        combinedOdds,
		CombinedProbability: combinedProbability,
		CombinedConfidence:  legs[0].Confidence * DecayFactor(len(legs)),
		KellyFraction:       sizing.KellyFraction,
		KellyCapped:         sizing.KellyCapped,
		Bankroll:            req.Bankroll,
		Stake:               sizing.Stake,
		PotentialReturn:     potentialReturn,
		PotentialProfit:     potentialReturn.Sub(sizing.Stake),
	}
}

// ticketID hashes the strategy, bankroll and legs so equal inputs give equal IDs
func ticketID(strategyName string, bankroll decimal.Decimal, legs []models.Selection) uuid.UUID {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s", strategyName, bankroll.String())
	for _, leg := range legs {
		fmt.Fprintf(&sb, "|%s:%s:%s", leg.MatchID, leg.Key, strconv.FormatFloat(leg.Odds, 'g', -1, 64))
	}
	return uuid.NewSHA1(ticketNamespace, []byte(sb.String()))
}
