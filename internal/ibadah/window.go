package ibadah

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// DefaultWindowMinutes is the look-ahead used by the upcoming-items widget.
const DefaultWindowMinutes = 60

// NextWindow returns the items whose TimeOfDay falls within the next
// windowMinutes of the given clock, bounds inclusive. A window reaching past
// midnight wraps: 23:40+60 covers both 23:50 and 00:30. Items without a
// parseable time are skipped. The input order is preserved.
func NextWindow(items []Item, now time.Time, windowMinutes int) []Item {
	if windowMinutes <= 0 {
		windowMinutes = DefaultWindowMinutes
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	windowEnd := (nowMinutes + windowMinutes) % minutesPerDay

	var out []Item
	for _, it := range items {
		t, err := parseClock(it.TimeOfDay)
		if err != nil {
			continue
		}
		if windowEnd >= nowMinutes {
			if t >= nowMinutes && t <= windowEnd {
				out = append(out, it)
			}
		} else if t >= nowMinutes || t <= windowEnd {
			out = append(out, it)
		}
	}
	return out
}

func parseClock(hhmm string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &hour, &minute); err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("ibadah: bad time %q", hhmm)
	}
	return hour*60 + minute, nil
}
