package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrMixedPegOptions = errors.New("cannot combine full and per-color peg assignments")
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidRoll     = errors.New("invalid roll")
)

// ValidationError is returned when a proposed board breaks one of its
// structural rules. Color and Peg are -1 when the rule is not tied to a
// single color or peg.
type ValidationError struct {
	Color int
	Peg   int
	Rule  string
	Err   error
}

func newValidationError(color, peg int, rule string) *ValidationError {
	return &ValidationError{Color: color, Peg: peg, Rule: rule, Err: ErrInvalidBoard}
}

func (e *ValidationError) Error() string {
	switch {
	case e.Color >= 0 && e.Peg >= 0:
		return fmt.Sprintf("%v: color:%d peg:%d %s", e.Err, e.Color, e.Peg, e.Rule)
	case e.Color >= 0:
		return fmt.Sprintf("%v: color:%d %s", e.Err, e.Color, e.Rule)
	default:
		return fmt.Sprintf("%v: %s", e.Err, e.Rule)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidMoveError is returned by Play when the requested peg has no legal
// destination for the roll.
type InvalidMoveError struct {
	Color Color
	Peg   int
	Roll  int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("color:%d peg:%d cannot move for roll of %d", e.Color, e.Peg, e.Roll)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
