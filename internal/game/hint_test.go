package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	easy, _ := DifficultyEasy.Config()     // range 49
	medium, _ := DifficultyMedium.Config() // range 99
	hard, _ := DifficultyHard.Config()     // range 199

	tests := []struct {
		name   string
		cfg    DifficultyConfig
		guess  int
		target int
		level  HintLevel
		msg    string
	}{
		{"easy moderate high", easy, 20, 10, HintNear, "Too high! Try going lower."},
		{"easy far high", easy, 50, 1, HintFar, "Way too high! Try a much lower number."},
		{"easy close low", easy, 8, 10, HintClose, "A little low - you're getting closer!"},
		{"medium far low", medium, 1, 80, HintFar, "Way too low! Try a much higher number."},
		{"medium near low", medium, 60, 80, HintNear, "Too low! Try going higher."},
		{"medium close high", medium, 90, 80, HintClose, "A little high - you're getting closer!"},
		{"hard far high", hard, 200, 100, HintFar, "Way too high! Try a much lower number."},
		{"hard close low", hard, 99, 100, HintClose, "A little low - you're getting closer!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, msg := Hint(tt.cfg, tt.guess, tt.target)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

// Exactly 30% and exactly 15% fall into the milder tier.
func TestHintBoundaries(t *testing.T) {
	cfg := DifficultyConfig{Min: 0, Max: 100, Attempts: 5}

	level, _ := Hint(cfg, 30, 0)
	assert.Equal(t, HintNear, level, "30% is not way off")
	level, _ = Hint(cfg, 31, 0)
	assert.Equal(t, HintFar, level)

	level, _ = Hint(cfg, 0, 15)
	assert.Equal(t, HintClose, level, "15% is close")
	level, _ = Hint(cfg, 0, 16)
	assert.Equal(t, HintNear, level)
}

func TestHintLevelString(t *testing.T) {
	assert.Equal(t, "none", HintNone.String())
	assert.Equal(t, "far", HintFar.String())
	assert.Equal(t, "near", HintNear.String())
	assert.Equal(t, "close", HintClose.String())
	assert.Equal(t, "unknown", HintLevel(42).String())
}
