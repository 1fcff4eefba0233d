package ticket

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/strategy"
)

var legDecay = []float64{1, 0.8, 0.65}

// extraLegDecay applies to each leg past the last entry of legDecay
const extraLegDecay = 0.8

// DecayFactor returns the confidence multiplier for a ticket with n legs
func DecayFactor(legs int) float64 {
	if legs <= 0 {
		return 0
	}
	if legs <= len(legDecay) {
		return legDecay[legs-1]
	}
	return legDecay[len(legDecay)-1] * math.Pow(extraLegDecay, float64(legs-len(legDecay)))
}

// NewBankroll converts a float amount to a validated bankroll
func NewBankroll(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v is not a finite amount", models.ErrInvalidBankroll, amount)
	}
	bankroll := decimal.NewFromFloat(amount)
	if err := ValidateBankroll(bankroll); err != nil {
		return decimal.Zero, err
	}
	return bankroll, nil
}

// ValidateBankroll rejects zero and negative bankrolls
func ValidateBankroll(bankroll decimal.Decimal) error {
	if !bankroll.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", models.ErrInvalidBankroll, bankroll.String())
	}
	return nil
}

// Sizing is the stake decision for a ticket
type Sizing struct {
	Stake         decimal.Decimal
	Configured    decimal.Decimal
	KellyFraction float64
	KellyCapped   bool
}

// SizeStake returns bankroll * percentage, lowered to the Kelly stake of the
// primary leg when it is priced by a bookmaker. The stake is floored to cents.
func SizeStake(bankroll decimal.Decimal, percentage float64, primary models.Selection) Sizing {
	configured := bankroll.Mul(decimal.NewFromFloat(percentage))
	sizing := Sizing{
		Stake:         configured,
		Configured:    configured,
		KellyFraction: strategy.KellyFraction(primary.Probability, primary.Odds),
	}

	if primary.MarketPriced {
		kellyStake := bankroll.Mul(decimal.NewFromFloat(sizing.KellyFraction))
		if kellyStake.LessThan(configured) {
			sizing.Stake = kellyStake
			sizing.KellyCapped = true
		}
	}

	sizing.Stake = sizing.Stake.RoundFloor(2)
	if sizing.Stake.IsNegative() {
		sizing.Stake = decimal.Zero
	}
	return sizing
}
