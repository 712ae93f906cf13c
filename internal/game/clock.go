package game

import (
	"fmt"
	"time"
)

// FormatClock renders milliseconds as "m:ss". Minutes are not capped and
// negative input reads as zero.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d", ms/60000, (ms%60000)/1000)
}

// FormatDuration is FormatClock for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatClock(d.Milliseconds())
}
