package game

import (
	"errors"
	"fmt"
)

// ErrInvalidDifficulty indicates a tier outside easy/medium/hard.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ErrOutOfRange indicates a guess that is not an integer or lies outside the
// tier's range. No attempt is consumed.
var ErrOutOfRange = errors.New("guess out of range or not a number")

// ErrNotPlaying indicates a guess submitted while no game is in progress.
var ErrNotPlaying = errors.New("game not in progress")

// GuessError carries the rejected input and the bounds the player must
// respect. It unwraps to ErrOutOfRange.
type GuessError struct {
	Input string
	Min   int
	Max   int
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("%v: %q not in [%d, %d]", ErrOutOfRange, e.Input, e.Min, e.Max)
}

func (e *GuessError) Unwrap() error { return ErrOutOfRange }

// Feedback is the player-facing re-prompt text.
func (e *GuessError) Feedback() string {
	return fmt.Sprintf("Please enter a number between %d and %d!", e.Min, e.Max)
}
