package riskengine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks requests rejected before any computation runs.
// Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrInfeasibleSearch is returned when the optimizer grid admits no candidate,
// e.g. the target R is too small to fit any partial level.
var ErrInfeasibleSearch = errors.New("no feasible plan for the given target")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
