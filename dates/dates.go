package dates

import (
	"sort"
	"time"
)

// Day truncates t to its calendar day in UTC. All day-boundary
// comparisons in the app go through this so that a check-in at
// 23:59 and one at 00:01 land on different days consistently.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Unique returns the distinct calendar days in ts, ascending.
// Duplicate entries for the same day collapse to one.
func Unique(ts []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(ts))
	days := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		d := Day(t)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
