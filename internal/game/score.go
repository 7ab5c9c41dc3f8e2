package game

import (
	"math"
	"time"
)

const (
	maxScore       = 1000.0
	maxTimePenalty = 200.0
	penaltyCap     = 60 * time.Second
)

// Score computes the points for a win.
//
// attemptsUsed counts every accepted guess including the winning one.
// The base is the unused share of the attempt budget scaled to 1000; up to
// 200 points are taken off linearly over the first 60 seconds. The result
// is floored and never negative.
func Score(cfg DifficultyConfig, attemptsUsed int, timeTaken time.Duration) int {
	if cfg.Attempts <= 0 {
		return 0
	}
	left := cfg.Attempts - attemptsUsed
	base := float64(left) * maxScore / float64(cfg.Attempts)

	if timeTaken < 0 {
		timeTaken = 0
	}
	if timeTaken > penaltyCap {
		timeTaken = penaltyCap
	}
	seconds := float64(timeTaken.Milliseconds()) / 1000
	penalty := seconds * maxTimePenalty / penaltyCap.Seconds()

	s := int(math.Floor(base - penalty))
	if s < 0 {
		return 0
	}
	return s
}
