package ticket

import (
	"github.com/yourusername/clever-tickets/internal/models"
)

const (
	hedgeHomeThreshold  = 0.5
	hedgeBlendThreshold = 0.55
	thirdLegXGThreshold = 2.3
)

// Hedge reasons reported in logs
const (
	ReasonHomeOpen     = "home_favoured_open_game"
	ReasonHomeTight    = "home_favoured_tight_game"
	ReasonAwayFavoured = "away_favoured"
	ReasonNoFavourite  = "no_clear_favourite"
	ReasonHighXG       = "high_total_xg"
	ReasonLowXG        = "low_total_xg"
)

// HedgeKey returns the second-leg market chosen by the fixed decision table
// on which result dominates the prediction
func HedgeKey(o models.EnsembleOutcome) (models.MarketKey, string) {
	switch o.Predicted() {
	case models.OutcomeHomeWin:
		if o.HomeWin <= hedgeHomeThreshold {
			return models.KeyBTTSYes, ReasonNoFavourite
		}
		blend := 0.7*o.HomeWin + 0.6*o.AwayWin
		if blend > hedgeBlendThreshold {
			return models.OverKey(2), ReasonHomeOpen
		}
		return models.UnderKey(2), ReasonHomeTight
	case models.OutcomeAwayWin:
		return models.KeyDoubleChanceX2, ReasonAwayFavoured
	default:
		return models.KeyBTTSYes, ReasonNoFavourite
	}
}

// ThirdLegKey returns the third-leg market for a goal model
func ThirdLegKey(gm models.GoalModel) (models.MarketKey, string) {
	if gm.TotalXG() > thirdLegXGThreshold {
		return models.KeyFirstHalfOver15, ReasonHighXG
	}
	return models.CornersUnderKey(3), ReasonLowXG
}
