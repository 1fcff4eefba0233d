// Package service wires market derivation, value evaluation and ticket building
// into the operations exposed by the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/clever-tickets/internal/cache"
	"github.com/yourusername/clever-tickets/internal/config"
	"github.com/yourusername/clever-tickets/internal/logger"
	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/metrics"
	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/odds"
	"github.com/yourusername/clever-tickets/internal/strategy"
	"github.com/yourusername/clever-tickets/internal/ticket"
)

// Deriver produces the market table for one match
type Deriver interface {
	Derive(matchID string, outcome models.EnsembleOutcome) (*markets.Table, error)
}

// Options configures an Analyzer
type Options struct {
	// Cache is optional
	Cache       *cache.TableCache
	UseOddsBand bool
	// Workers bounds AnalyzeAll concurrency; zero means GOMAXPROCS
	Workers int
	Logger  *logrus.Logger
}

// Analyzer runs the prediction to ticket pipeline
type Analyzer struct {
	deriver   Deriver
	evaluator *odds.Evaluator
	cache     *cache.TableCache
	builder   *ticket.Builder
	workers   int
	log       *logger.AnalysisLogger
	ticketLog *logger.TicketLogger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(deriver Deriver, evaluator *odds.Evaluator, opts Options) *Analyzer {
	baseLogger := opts.Logger
	if baseLogger == nil {
		baseLogger = logger.Discard()
	}

	var selectorOpts []strategy.SelectorOption
	if opts.UseOddsBand {
		selectorOpts = append(selectorOpts, strategy.WithOddsBand())
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Analyzer{
		deriver:   deriver,
		evaluator: evaluator,
		cache:     opts.Cache,
		builder:   ticket.NewBuilder(strategy.NewSelector(selectorOpts...), baseLogger),
		workers:   workers,
		log:       logger.NewAnalysisLogger(baseLogger),
		ticketLog: logger.NewTicketLogger(baseLogger),
	}
}

// NewFromConfig creates an analyzer backed by the market engine and the configured cache
func NewFromConfig(cfg *config.Config, baseLogger *logrus.Logger) (*Analyzer, error) {
	evaluator, err := odds.NewEvaluator(cfg.Evaluation.MinEdge)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator: %w", err)
	}

	opts := Options{
		UseOddsBand: cfg.Evaluation.UseOddsBand,
		Logger:      baseLogger,
	}
	if cfg.Cache.Enabled {
		opts.Cache = cache.NewTableCache(cfg.CacheTTL(), cfg.Cache.MaxSize, cache.SystemClock)
	}

	return NewAnalyzer(markets.NewEngine(cfg.Calibration), evaluator, opts), nil
}

// Analyze derives the market table of one match and evaluates its prices
func (a *Analyzer) Analyze(ctx context.Context, input MatchInput) (*MatchAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		metrics.RecordDerivationFailure(failureReason(err))
		a.log.LogAnalysisFailed(input.MatchID, err)
		return nil, err
	}

	start := time.Now()
	table, hit, err := a.table(input)
	if err != nil {
		metrics.RecordDerivationFailure(failureReason(err))
		a.log.LogAnalysisFailed(input.MatchID, err)
		return nil, err
	}

	valueBets, err := a.evaluator.ValueBets(table, input.Odds)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", input.MatchID, err)
	}
	for _, bet := range valueBets {
		metrics.RecordValueBet(string(bet.Key), bet.Edge)
	}

	band, err := odds.RecommendedBand(input.Outcome.ConsensusStrength)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", input.MatchID, err)
	}

	analysis := &MatchAnalysis{
		MatchID:   input.MatchID,
		HomeTeam:  input.HomeTeam,
		AwayTeam:  input.AwayTeam,
		Table:     table,
		ValueBets: valueBets,
		OddsBand:  band,
		Margins:   odds.Margins(table, input.Odds),
		Odds:      input.Odds,
		CacheHit:  hit,
	}

	a.log.LogMatchAnalyzed(input.MatchID, len(table.Probabilities), len(valueBets), hit, float64(time.Since(start).Microseconds())/1000)
	if len(valueBets) > 0 {
		a.ticketLog.LogValueBets(input.MatchID, valueBets)
	}
	return analysis, nil
}

func (a *Analyzer) table(input MatchInput) (*markets.Table, bool, error) {
	key := cache.Key{MatchID: input.MatchID, Outcome: input.Outcome}
	if a.cache != nil {
		if table, ok := a.cache.Get(key); ok {
			return table, true, nil
		}
	}

	start := time.Now()
	table, err := a.deriver.Derive(input.MatchID, input.Outcome)
	if err != nil {
		return nil, false, err
	}
	metrics.RecordTableDerived(time.Since(start).Seconds())

	if a.cache != nil {
		a.cache.Set(key, table)
	}
	return table, false, nil
}

// AnalyzeAll analyzes matches concurrently. Results keep the input order and
// the first failure cancels the remaining work.
func (a *Analyzer) AnalyzeAll(ctx context.Context, inputs []MatchInput) ([]*MatchAnalysis, error) {
	if err := checkDuplicates(inputs); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]*MatchAnalysis, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i := range inputs {
		i := i
		g.Go(func() error {
			analysis, err := a.Analyze(gctx, inputs[i])
			if err != nil {
				return err
			}
			results[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.LogBatchAnalyzed(len(inputs), a.workers, float64(time.Since(start).Microseconds())/1000)
	return results, nil
}

// TicketRequest asks for one ticket over a set of matches
type TicketRequest struct {
	Strategy string       `json:"strategy"`
	Bankroll float64      `json:"bankroll"`
	Legs     int          `json:"legs,omitempty"`
	Matches  []MatchInput `json:"matches"`
}

// BuildTicket analyzes the requested matches and builds a ticket for the named strategy
func (a *Analyzer) BuildTicket(ctx context.Context, req TicketRequest) (*models.Ticket, error) {
	strat, err := strategy.Lookup(req.Strategy)
	if err != nil {
		metrics.RecordTicketFailure(req.Strategy, failureReason(err))
		return nil, err
	}

	t, err := a.buildTicket(ctx, strat, req)
	if err != nil {
		metrics.RecordTicketFailure(strat.Name, failureReason(err))
		return nil, err
	}

	metrics.RecordTicketBuilt(t.Strategy, t.Legs(), t.Stake.InexactFloat64(), t.CombinedOdds)
	return t, nil
}

func (a *Analyzer) buildTicket(ctx context.Context, strat strategy.BettingStrategy, req TicketRequest) (*models.Ticket, error) {
	bankroll, err := ticket.NewBankroll(req.Bankroll)
	if err != nil {
		return nil, err
	}

	analyses, err := a.AnalyzeAll(ctx, req.Matches)
	if err != nil {
		return nil, err
	}

	matches := make([]strategy.MatchMarkets, len(analyses))
	for i, analysis := range analyses {
		matches[i] = strategy.MatchMarkets{Table: analysis.Table, Odds: analysis.Odds}
	}

	return a.builder.Build(ticket.Request{
		Strategy: strat,
		Matches:  matches,
		Bankroll: bankroll,
		Legs:     req.Legs,
	})
}

// CacheStats returns cache statistics, zero when caching is disabled
func (a *Analyzer) CacheStats() cache.Stats {
	if a.cache == nil {
		return cache.Stats{}
	}
	return a.cache.Stats()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrNoEligibleSelections):
		return "no_eligible_selections"
	case errors.Is(err, models.ErrInvalidBankroll):
		return "invalid_bankroll"
	case errors.Is(err, models.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, models.ErrUnknownStrategy):
		return "unknown_strategy"
	case errors.Is(err, models.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unknown"
	}
}
