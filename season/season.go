package season

import (
	"fmt"
	"strconv"
	"time"

	"habitstreak/dates"
)

// Season identifies the competitive window a record was last touched in.
type Season struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Year      int       `json:"year" firestore:"year"`
	StartDate time.Time `json:"startDate" firestore:"startDate"`
	EndDate   time.Time `json:"endDate" firestore:"endDate"`
}

// Policy derives the season for a given instant. Deployments pick one
// policy and never mix them; season IDs from different policies are
// not comparable.
type Policy interface {
	Current(now time.Time) Season
}

var names = [4]string{"spring", "summer", "autumn", "winter"}

// QuarterPolicy maps each calendar quarter to a named season:
// Jan-Mar spring, Apr-Jun summer, Jul-Sep autumn, Oct-Dec winter.
type QuarterPolicy struct{}

var _ Policy = QuarterPolicy{}

func (QuarterPolicy) Current(now time.Time) Season {
	u := now.UTC()
	year := u.Year()
	idx := (int(u.Month()) - 1) / 3
	start := time.Date(year, time.Month(idx*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return Season{
		ID:        fmt.Sprintf("%d-%s", year, names[idx]),
		Name:      names[idx],
		Year:      year,
		StartDate: start,
		EndDate:   end,
	}
}

// WindowPolicy slices time into fixed-length windows counted from a
// single project epoch. Season IDs are monotonically increasing
// integers starting at 1.
type WindowPolicy struct {
	Epoch time.Time
	Days  int
}

var _ Policy = WindowPolicy{}

func (p WindowPolicy) Current(now time.Time) Season {
	length := p.Days
	if length <= 0 {
		length = 30
	}
	elapsed := dates.DaysBetween(p.Epoch, now)
	number := elapsed/length + 1
	start := dates.Day(p.Epoch).AddDate(0, 0, (number-1)*length)
	end := start.AddDate(0, 0, length-1)
	return Season{
		ID:        strconv.Itoa(number),
		Name:      fmt.Sprintf("season-%d", number),
		Year:      start.Year(),
		StartDate: start,
		EndDate:   end,
	}
}
