package markets

import (
	"github.com/yourusername/clever-tickets/internal/goalmodel"
	"github.com/yourusername/clever-tickets/internal/models"
)

func deriveGoals(b *builder, gm models.GoalModel, cal goalmodel.Calibration) {
	total := gm.TotalXG()

	for _, n := range models.GoalLines {
		b.set(models.OverKey(n), goalmodel.OverProbability(n, total))
		b.set(models.UnderKey(n), goalmodel.UnderProbability(n, total))
	}

	fourPlus := 1.0
	for n := 0; n < models.MaxScorelineGoals; n++ {
		p := goalmodel.PMF(n, total)
		b.set(models.ExactGoalsKey(n), p)
		fourPlus -= p
	}
	b.set(models.KeyExactGoalsFourPlus, fourPlus)

	even := goalmodel.EvenProbability(total)
	b.set(models.KeyGoalsEven, even)
	b.set(models.KeyGoalsOdd, 1-even)

	firstHalf := total * cal.FirstHalfShare
	b.set(models.KeyFirstHalfOver15, goalmodel.OverProbability(1, firstHalf))
	b.set(models.KeyFirstHalfUnder15, goalmodel.UnderProbability(1, firstHalf))
}
