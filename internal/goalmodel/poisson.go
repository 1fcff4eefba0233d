package goalmodel

import "math"

// PMF returns P(X = k) for X ~ Poisson(lambda)
func PMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	p := math.Exp(-lambda)
	for i := 1; i <= k; i++ {
		p *= lambda / float64(i)
	}
	return p
}

// CDF returns P(X <= k) for X ~ Poisson(lambda)
func CDF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		return 1
	}
	term := math.Exp(-lambda)
	sum := term
	for i := 1; i <= k; i++ {
		term *= lambda / float64(i)
		sum += term
	}
	return math.Min(sum, 1)
}

// UnderProbability returns P(total < line+0.5), the truncated Poisson CDF at line.
// For line 2 this is e^-λ(1 + λ + λ²/2).
func UnderProbability(line int, lambda float64) float64 {
	return CDF(line, lambda)
}

// OverProbability returns P(total > line+0.5). Zero when lambda is zero.
func OverProbability(line int, lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	return 1 - UnderProbability(line, lambda)
}

// ScoresProbability returns P(X >= 1)
func ScoresProbability(lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	return 1 - math.Exp(-lambda)
}

// EvenProbability returns P(X is even) for X ~ Poisson(lambda)
func EvenProbability(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	return (1 + math.Exp(-2*lambda)) / 2
}
