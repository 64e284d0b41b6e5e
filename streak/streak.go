package streak

import (
	"time"

	"habitstreak/dates"
)

// Current returns the length of the unbroken run of consecutive
// calendar days ending at the most recent check-in. The run is
// anchored at the last check-in, not at today: a user who went quiet
// last week still reports the streak they ended on until their next
// check-in resets it.
func Current(checkins []time.Time) int {
	days := dates.Unique(checkins)
	if len(days) == 0 {
		return 0
	}

	count := 1
	// days is ascending; walk backward from the most recent day.
	for i := len(days) - 1; i > 0; i-- {
		if dates.DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		count++
	}
	return count
}
