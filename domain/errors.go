package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for inputs outside the numeric domain:
	// negative balances or rates, non-positive terms, unknown strategies.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonConverging is returned when the configured payments can never
	// retire the balance.
	ErrNonConverging = errors.New("payment plan does not converge")
)

// CalculationError carries the field and reason behind a failed calculation.
// It unwraps to ErrInvalidInput or ErrNonConverging.
type CalculationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *CalculationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *CalculationError) Unwrap() error {
	return e.Kind
}

func InvalidInput(field, format string, args ...any) error {
	return &CalculationError{Kind: ErrInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NonConverging(field, format string, args ...any) error {
	return &CalculationError{Kind: ErrNonConverging, Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNonConverging(err error) bool {
	return errors.Is(err, ErrNonConverging)
}
