package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	medium, _ := DifficultyMedium.Config()
	easy, _ := DifficultyEasy.Config()

	tests := []struct {
		name     string
		cfg      DifficultyConfig
		used     int
		taken    time.Duration
		expected int
	}{
		{"first guess instantly", medium, 1, 0, 875},
		{"fourth guess at 30s", medium, 4, 30 * time.Second, 400},
		{"last guess at 60s", medium, 8, 60 * time.Second, 0},
		{"last guess instantly", medium, 8, 0, 0},
		{"penalty saturates", medium, 4, 10 * time.Minute, 300},
		{"fractional seconds floor", easy, 2, 1500 * time.Millisecond, 795},
		{"sub-millisecond ignored", easy, 1, 900 * time.Microsecond, 900},
		{"negative duration treated as zero", easy, 1, -time.Second, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.cfg, tt.used, tt.taken))
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	for _, d := range Difficulties() {
		cfg, _ := d.Config()
		prev := Score(cfg, 1, 0)
		assert.LessOrEqual(t, prev, 1000)
		for used := 2; used <= cfg.Attempts; used++ {
			s := Score(cfg, used, 0)
			assert.LessOrEqual(t, s, prev, "%s: more attempts must not score higher", d)
			prev = s
		}

		prev = Score(cfg, 1, 0)
		for sec := 1; sec <= 90; sec++ {
			s := Score(cfg, 1, time.Duration(sec)*time.Second)
			assert.LessOrEqual(t, s, prev, "%s: more time must not score higher", d)
			assert.GreaterOrEqual(t, s, 0)
			prev = s
		}
	}
}

func TestScoreZeroAttemptsConfig(t *testing.T) {
	assert.Equal(t, 0, Score(DifficultyConfig{}, 1, 0))
}
