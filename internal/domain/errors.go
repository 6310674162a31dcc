package domain

import (
	"errors"
	"fmt"
)

// these are data-integrity errors. callers should let them propagate
// instead of rendering a placeholder
var (
	ErrEmptySeries           = errors.New("portfolio series is empty")
	ErrDegenerateSimulation  = errors.New("simulation needs at least two snapshots spanning a positive number of days")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrUnrecognizedIndicator = errors.New("unrecognized indicator")
	ErrSimulationNotFound    = errors.New("simulation not found")
	ErrComparisonNotFound    = errors.New("saved comparison not found")
	ErrInvalidInput          = errors.New("invalid input")
)

type UnrecognizedIndicatorError struct {
	Type string
}

func (e UnrecognizedIndicatorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedIndicator.Error(), e.Type)
}

func (e UnrecognizedIndicatorError) Is(target error) bool {
	return target == ErrUnrecognizedIndicator
}
