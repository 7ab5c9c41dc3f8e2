// internal/game/types.go
//
// Core type definitions for the number guessing engine.
// Defines:
//   - State: coarse lifecycle of the engine (menu/playing/won/lost).
//   - Difficulty + DifficultyConfig: the fixed tier table.
//   - Snapshot: read-only copy of the current session handed to callers.

package game

import (
	"fmt"
	"strings"
	"time"
)

// State is the engine's position in the menu → playing → won/lost cycle.
type State string

const (
	StateMenu    State = "menu"
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Finished reports whether the state is terminal (won or lost).
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Difficulty names one of the three tiers. Values outside the constants
// below are rejected by ParseDifficulty and Engine.Start.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyConfig describes one tier: an inclusive guess range and the
// number of attempts allowed.
type DifficultyConfig struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Attempts int    `json:"attempts"`
	Label    string `json:"label"`
}

// Range is the width used by the hint percentages (Max − Min).
func (c DifficultyConfig) Range() int { return c.Max - c.Min }

// Contains reports whether n lies in [Min, Max].
func (c DifficultyConfig) Contains(n int) bool { return n >= c.Min && n <= c.Max }

// tiers is the static table; order is ascending difficulty.
var tiers = [...]struct {
	d   Difficulty
	cfg DifficultyConfig
}{
	{DifficultyEasy, DifficultyConfig{Min: 1, Max: 50, Attempts: 10, Label: "Easy"}},
	{DifficultyMedium, DifficultyConfig{Min: 1, Max: 100, Attempts: 8, Label: "Medium"}},
	{DifficultyHard, DifficultyConfig{Min: 1, Max: 200, Attempts: 6, Label: "Hard"}},
}

// Difficulties returns the known tiers from easiest to hardest.
func Difficulties() []Difficulty {
	out := make([]Difficulty, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, t.d)
	}
	return out
}

// ParseDifficulty converts user or config text into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	_, err := d.Config()
	return err == nil
}

// Config returns the tier's range and attempt budget.
func (d Difficulty) Config() (DifficultyConfig, error) {
	for _, t := range tiers {
		if t.d == d {
			return t.cfg, nil
		}
	}
	return DifficultyConfig{}, ErrInvalidDifficulty
}

func (d Difficulty) String() string { return string(d) }

// Snapshot is a copy of the engine's session at one instant. Mutating it
// has no effect on the engine.
type Snapshot struct {
	ID                string           `json:"id,omitempty"`
	Difficulty        Difficulty       `json:"difficulty,omitempty"`
	Config            DifficultyConfig `json:"config"`
	State             State            `json:"state"`
	AttemptsRemaining int              `json:"attemptsRemaining"`
	Guesses           []int            `json:"guesses"`
	StartedAt         time.Time        `json:"startedAt"`
	TimeTaken         time.Duration    `json:"timeTaken"` // set once the session is won or lost
	Score             int              `json:"score"`     // only meaningful in StateWon
	Target            int              `json:"target"`    // revealed in StateWon/StateLost, zero otherwise
	Feedback          string           `json:"feedback,omitempty"`
}

// AttemptsUsed is the number of accepted guesses so far.
func (s Snapshot) AttemptsUsed() int { return len(s.Guesses) }

// Progress is the share of the attempt budget already spent, in percent.
// Outside StatePlaying it is 0.
func (s Snapshot) Progress() float64 {
	if s.State != StatePlaying || s.Config.Attempts == 0 {
		return 0
	}
	used := s.Config.Attempts - s.AttemptsRemaining
	return float64(used) / float64(s.Config.Attempts) * 100
}
