package game

import (
	"fmt"
	"time"
)

// Elapsed returns now − start, or zero if the clock stepped backwards.
func Elapsed(now, start time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// FormatElapsed renders d as m:ss, truncating partial seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
