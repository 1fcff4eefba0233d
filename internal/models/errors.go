package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrOutOfRange           = errors.New("derived probability out of range")
	ErrNoEligibleSelections = errors.New("no eligible selections")
	ErrInvalidBankroll      = errors.New("invalid bankroll")
	ErrUnknownStrategy      = errors.New("unknown strategy")
	ErrUnknownMarket        = errors.New("unknown market key")
)

// ValidationError reports a caller-supplied value that failed validation
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value float64, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// RangeError reports a derived probability that left [0,1]
type RangeError struct {
	Key   MarketKey
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("probability for %s out of range: %v", e.Key, e.Value)
}

// Unwrap lets errors.Is match ErrOutOfRange
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// NoEligibleSelectionsError carries the thresholds that filtered every candidate
type NoEligibleSelectionsError struct {
	Strategy      string
	MinConfidence float64
	MaxOdds       float64
	Considered    int
}

func (e *NoEligibleSelectionsError) Error() string {
	return fmt.Sprintf("strategy %s: no selection among %d candidates meets min_confidence %.2f and max_odds %.2f",
		e.Strategy, e.Considered, e.MinConfidence, e.MaxOdds)
}

// Unwrap lets errors.Is match ErrNoEligibleSelections
func (e *NoEligibleSelectionsError) Unwrap() error {
	return ErrNoEligibleSelections
}
