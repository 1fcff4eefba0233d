package models

import (
	"fmt"
	"math"
	"sort"
)

// MarketKey identifies one outcome of one market, e.g. OVER_2_5 or BTTS_YES
type MarketKey string

// Market groups the mutually related outcomes of a single betting market
type Market string

const (
	MarketMatchResult    Market = "MATCH_RESULT"
	MarketDoubleChance   Market = "DOUBLE_CHANCE"
	MarketBTTS           Market = "BTTS"
	MarketExactGoals     Market = "EXACT_GOALS"
	MarketOddEven        Market = "ODD_EVEN"
	MarketFirstGoal      Market = "FIRST_GOAL"
	MarketCleanSheetHome Market = "CLEAN_SHEET_HOME"
	MarketCleanSheetAway Market = "CLEAN_SHEET_AWAY"
	MarketCorrectScore   Market = "CORRECT_SCORE"
	MarketAsianHandicap  Market = "ASIAN_HANDICAP"
	MarketFirstHalfGoals Market = "FIRST_HALF_GOALS_1_5"
)

const (
	KeyHomeWin MarketKey = "HOME_WIN"
	KeyDraw    MarketKey = "DRAW"
	KeyAwayWin MarketKey = "AWAY_WIN"

	KeyDoubleChance1X MarketKey = "DOUBLE_CHANCE_1X"
	KeyDoubleChance12 MarketKey = "DOUBLE_CHANCE_12"
	KeyDoubleChanceX2 MarketKey = "DOUBLE_CHANCE_X2"

	KeyBTTSYes MarketKey = "BTTS_YES"
	KeyBTTSNo  MarketKey = "BTTS_NO"

	KeyGoalsOdd  MarketKey = "GOALS_ODD"
	KeyGoalsEven MarketKey = "GOALS_EVEN"

	KeyFirstGoalHome MarketKey = "FIRST_GOAL_HOME"
	KeyFirstGoalAway MarketKey = "FIRST_GOAL_AWAY"
	KeyFirstGoalNone MarketKey = "FIRST_GOAL_NONE"

	KeyCleanSheetHomeYes MarketKey = "CLEAN_SHEET_HOME_YES"
	KeyCleanSheetHomeNo  MarketKey = "CLEAN_SHEET_HOME_NO"
	KeyCleanSheetAwayYes MarketKey = "CLEAN_SHEET_AWAY_YES"
	KeyCleanSheetAwayNo  MarketKey = "CLEAN_SHEET_AWAY_NO"

	KeyCorrectScoreOther MarketKey = "CS_OTHER"

	KeyAsianHandicapHome MarketKey = "AH_HOME"
	KeyAsianHandicapAway MarketKey = "AH_AWAY"

	KeyFirstHalfOver15  MarketKey = "FH_OVER_1_5"
	KeyFirstHalfUnder15 MarketKey = "FH_UNDER_1_5"

	KeyExactGoalsFourPlus MarketKey = "EXACT_GOALS_4_PLUS"
)

// Goal, corner and card lines covered by the derivation engine
var (
	GoalLines   = []int{0, 1, 2, 3, 4, 5}
	CornerLines = []int{3, 8, 9, 10}
	CardLines   = []int{3, 4}
)

// MaxScorelineGoals is the per-side cap for enumerated correct scores and exact goals
const MaxScorelineGoals = 4

// Definition describes a market key
type Definition struct {
	Key       MarketKey `json:"key"`
	Market    Market    `json:"market"`
	Label     string    `json:"label"`
	Exclusive bool      `json:"exclusive"`
}

var (
	registry    = map[MarketKey]Definition{}
	orderedKeys []MarketKey
)

func init() {
	register(MarketMatchResult, true, KeyHomeWin, "Home Win", KeyDraw, "Draw", KeyAwayWin, "Away Win")
	register(MarketDoubleChance, false, KeyDoubleChance1X, "Home or Draw", KeyDoubleChance12, "Home or Away", KeyDoubleChanceX2, "Draw or Away")
	for _, n := range GoalLines {
		register(TotalGoalsMarket(n), true, OverKey(n), fmt.Sprintf("Over %d.5", n), UnderKey(n), fmt.Sprintf("Under %d.5", n))
	}
	register(MarketBTTS, true, KeyBTTSYes, "Both Teams To Score - Yes", KeyBTTSNo, "Both Teams To Score - No")

	exact := make([]any, 0, 2*(MaxScorelineGoals+1))
	for n := 0; n < MaxScorelineGoals; n++ {
		exact = append(exact, ExactGoalsKey(n), fmt.Sprintf("Exactly %d Goals", n))
	}
	exact = append(exact, KeyExactGoalsFourPlus, fmt.Sprintf("%d+ Goals", MaxScorelineGoals))
	register(MarketExactGoals, true, exact...)

	register(MarketOddEven, true, KeyGoalsOdd, "Odd Total Goals", KeyGoalsEven, "Even Total Goals")
	register(MarketFirstGoal, true, KeyFirstGoalHome, "Home Scores First", KeyFirstGoalAway, "Away Scores First", KeyFirstGoalNone, "No Goal")
	register(MarketCleanSheetHome, true, KeyCleanSheetHomeYes, "Home Clean Sheet - Yes", KeyCleanSheetHomeNo, "Home Clean Sheet - No")
	register(MarketCleanSheetAway, true, KeyCleanSheetAwayYes, "Away Clean Sheet - Yes", KeyCleanSheetAwayNo, "Away Clean Sheet - No")

	scores := make([]any, 0, 2*(MaxScorelineGoals*MaxScorelineGoals+1))
	for h := 0; h < MaxScorelineGoals; h++ {
		for a := 0; a < MaxScorelineGoals; a++ {
			scores = append(scores, CorrectScoreKey(h, a), fmt.Sprintf("Correct Score %d-%d", h, a))
		}
	}
	scores = append(scores, KeyCorrectScoreOther, "Correct Score - Any Other")
	register(MarketCorrectScore, true, scores...)

	register(MarketAsianHandicap, true, KeyAsianHandicapHome, "Asian Handicap - Home", KeyAsianHandicapAway, "Asian Handicap - Away")
	register(MarketFirstHalfGoals, true, KeyFirstHalfOver15, "First Half Over 1.5", KeyFirstHalfUnder15, "First Half Under 1.5")
	for _, n := range CornerLines {
		register(CornersMarket(n), true, CornersOverKey(n), fmt.Sprintf("Corners Over %d.5", n), CornersUnderKey(n), fmt.Sprintf("Corners Under %d.5", n))
	}
	for _, n := range CardLines {
		register(CardsMarket(n), true, CardsOverKey(n), fmt.Sprintf("Cards Over %d.5", n), CardsUnderKey(n), fmt.Sprintf("Cards Under %d.5", n))
	}
}

// register adds alternating key/label pairs under one market
func register(market Market, exclusive bool, pairs ...any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(MarketKey)
		registry[key] = Definition{
			Key:       key,
			Market:    market,
			Label:     pairs[i+1].(string),
			Exclusive: exclusive,
		}
		orderedKeys = append(orderedKeys, key)
	}
}

// Lookup returns the definition for a market key
func Lookup(key MarketKey) (Definition, error) {
	def, ok := registry[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrUnknownMarket, key)
	}
	return def, nil
}

// Keys returns every registered market key in registration order
func Keys() []MarketKey {
	keys := make([]MarketKey, len(orderedKeys))
	copy(keys, orderedKeys)
	return keys
}

// MarketOf returns the market a key belongs to, or "" when unknown
func MarketOf(key MarketKey) Market {
	return registry[key].Market
}

// OverKey returns the key for Over n.5 total goals
func OverKey(n int) MarketKey { return MarketKey(fmt.Sprintf("OVER_%d_5", n)) }

// UnderKey returns the key for Under n.5 total goals
func UnderKey(n int) MarketKey { return MarketKey(fmt.Sprintf("UNDER_%d_5", n)) }

// TotalGoalsMarket returns the market for the n.5 goals line
func TotalGoalsMarket(n int) Market { return Market(fmt.Sprintf("TOTAL_GOALS_%d_5", n)) }

// ExactGoalsKey returns the key for exactly n total goals
func ExactGoalsKey(n int) MarketKey {
	if n >= MaxScorelineGoals {
		return KeyExactGoalsFourPlus
	}
	return MarketKey(fmt.Sprintf("EXACT_GOALS_%d", n))
}

// CorrectScoreKey returns the key for a scoreline
func CorrectScoreKey(home, away int) MarketKey {
	if home >= MaxScorelineGoals || away >= MaxScorelineGoals {
		return KeyCorrectScoreOther
	}
	return MarketKey(fmt.Sprintf("CS_%d_%d", home, away))
}

func CornersOverKey(n int) MarketKey  { return MarketKey(fmt.Sprintf("CORNERS_OVER_%d_5", n)) }
func CornersUnderKey(n int) MarketKey { return MarketKey(fmt.Sprintf("CORNERS_UNDER_%d_5", n)) }
func CornersMarket(n int) Market      { return Market(fmt.Sprintf("CORNERS_%d_5", n)) }
func CardsOverKey(n int) MarketKey    { return MarketKey(fmt.Sprintf("CARDS_OVER_%d_5", n)) }
func CardsUnderKey(n int) MarketKey   { return MarketKey(fmt.Sprintf("CARDS_UNDER_%d_5", n)) }
func CardsMarket(n int) Market        { return Market(fmt.Sprintf("CARDS_%d_5", n)) }

// NoFairOdds marks a zero-probability outcome that has no fair price
const NoFairOdds = 0.0

// MarketProbability is the fair probability and price of one market outcome
type MarketProbability struct {
	Key         MarketKey `json:"market_key"`
	Probability float64   `json:"probability"`
	FairOdds    float64   `json:"fair_odds,omitempty"`
}

// NewMarketProbability pairs a probability with its reciprocal price
func NewMarketProbability(key MarketKey, probability float64) MarketProbability {
	mp := MarketProbability{Key: key, Probability: probability, FairOdds: NoFairOdds}
	if probability > 0 {
		mp.FairOdds = 1 / probability
	}
	return mp
}

// HasFairOdds reports whether a fair price is defined
func (mp MarketProbability) HasFairOdds() bool {
	return mp.Probability > 0 && mp.FairOdds > 0
}

// MarketOdds holds bookmaker decimal odds keyed by market key. Any key may be absent.
type MarketOdds map[MarketKey]float64

// Get returns the odds for a key when present
func (m MarketOdds) Get(key MarketKey) (float64, bool) {
	if m == nil {
		return 0, false
	}
	odds, ok := m[key]
	return odds, ok
}

// Validate rejects unknown keys and non-finite or sub-evens prices
func (m MarketOdds) Validate() error {
	keys := make([]MarketKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		odds := m[key]
		if _, ok := registry[key]; !ok {
			return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrUnknownMarket, key)
		}
		if math.IsNaN(odds) || math.IsInf(odds, 0) || odds <= 1 {
			return NewValidationError(string(key), odds, "decimal odds must be finite and greater than 1")
		}
	}
	return nil
}

// ValueBet is a market priced above its fair odds
type ValueBet struct {
	Key        MarketKey `json:"market"`
	Edge       float64   `json:"edge"`
	FairOdds   float64   `json:"fair_odds"`
	MarketOdds float64   `json:"market_odds"`
}
