package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"habitstreak/dates"
	"habitstreak/season"
	"habitstreak/services/user"
	"habitstreak/utils"
)

// Summary aggregates one user's check-in history.
type Summary struct {
	ID            string         `json:"telegramId"`
	MonthlyStats  map[string]int `json:"monthlyStats"`
	TotalDays     int            `json:"totalDays"`
	CheckinsCount int            `json:"checkinsCount"`
	Consistency   float64        `json:"consistency"`
	CurrentSeason season.Season  `json:"currentSeason"`
}

type Service interface {
	// Get returns the aggregated statistics for the user at "now".
	// Unknown users yield an all-zero summary.
	Get(ctx context.Context, userID string, now time.Time) (*Summary, error)
}

type service struct {
	users   user.Service
	seasons season.Policy
}

var _ Service = (*service)(nil)

func NewService(users user.Service, seasons season.Policy) Service {
	return &service{
		users:   users,
		seasons: seasons,
	}
}

func (s *service) Get(ctx context.Context, userID string, now time.Time) (*Summary, error) {
	record, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, user.NotFound) {
		return &Summary{
			ID:            userID,
			MonthlyStats:  map[string]int{},
			CurrentSeason: s.seasons.Current(now),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	summary := Compute(record.Checkins, record.StartDate, now)
	summary.ID = userID
	summary.CurrentSeason = s.seasons.Current(now)
	return &summary, nil
}

// Compute buckets check-ins by calendar month and derives the
// consistency ratio over the days since the record was created.
// TotalDays never drops below 1 so a day-one user divides by one.
func Compute(checkins []time.Time, startDate, now time.Time) Summary {
	monthly := make(map[string]int)
	days := dates.Unique(checkins)
	for _, d := range days {
		key := fmt.Sprintf("%d-%d", d.Year(), int(d.Month()))
		monthly[key]++
	}

	totalDays := int(math.Ceil(now.Sub(startDate).Hours() / 24))
	if totalDays < 1 {
		totalDays = 1
	}

	return Summary{
		MonthlyStats:  monthly,
		TotalDays:     totalDays,
		CheckinsCount: len(days),
		Consistency:   utils.Round1(float64(len(days)) / float64(totalDays) * 100),
	}
}
