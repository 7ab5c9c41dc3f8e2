package game

// HintLevel grades how far a wrong guess is from the target.
type HintLevel int

const (
	HintNone  HintLevel = iota // no hint (correct guess or game over)
	HintFar                    // more than 30% of the range away
	HintNear                   // more than 15%, up to 30%
	HintClose                  // 15% or less
)

func (h HintLevel) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintFar:
		return "far"
	case HintNear:
		return "near"
	case HintClose:
		return "close"
	default:
		return "unknown"
	}
}

const (
	farPercent  = 30.0
	nearPercent = 15.0
)

// Hint grades a wrong guess against the target and returns the directional
// message shown to the player. The distance is measured as a percentage of
// cfg.Range(); a tier boundary value belongs to the milder tier.
func Hint(cfg DifficultyConfig, guess, target int) (HintLevel, string) {
	diff := guess - target
	if diff < 0 {
		diff = -diff
	}
	pctOff := float64(diff*100) / float64(cfg.Range())

	level := HintClose
	switch {
	case pctOff > farPercent:
		level = HintFar
	case pctOff > nearPercent:
		level = HintNear
	}

	if guess > target {
		switch level {
		case HintFar:
			return level, "Way too high! Try a much lower number."
		case HintNear:
			return level, "Too high! Try going lower."
		default:
			return level, "A little high - you're getting closer!"
		}
	}
	switch level {
	case HintFar:
		return level, "Way too low! Try a much higher number."
	case HintNear:
		return level, "Too low! Try going higher."
	default:
		return level, "A little low - you're getting closer!"
	}
}
