package service

import (
	"errors"
	"fmt"

	"smokyhost/repository"
)

var (
	ErrInvalidAssumptions    = errors.New("invalid market assumptions")
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	ErrNotFound              = repository.ErrNotFound
	ErrInvalidInput          = errors.New("invalid input")
	ErrConflict              = errors.New("conflict")
)

// AssumptionError names the MarketAssumptions field that broke an invariant.
type AssumptionError struct {
	Field  string
	Reason string
}

func (e *AssumptionError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidAssumptions, e.Field, e.Reason)
}

func (e *AssumptionError) Unwrap() error {
	return ErrInvalidAssumptions
}

func invalidAssumption(field, format string, args ...any) error {
	return &AssumptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
