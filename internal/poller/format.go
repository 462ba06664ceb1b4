package poller

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders a coarse, human-readable age for a past instant:
// under a minute reads "agora mesmo", under an hour "N min", then "N h".
func FormatTimeAgo(now, past time.Time) string {
	diff := now.Sub(past)
	if diff < time.Minute {
		return "agora mesmo"
	}
	if diff < time.Hour {
		return fmt.Sprintf("%d min", int(diff.Minutes()))
	}
	return fmt.Sprintf("%d h", int(diff.Hours()))
}
