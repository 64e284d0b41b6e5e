package leaderboard

import (
	"context"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"habitstreak/season"
	"habitstreak/services/user"
	"habitstreak/streak"
)

// Entry is one ranked row.
type Entry struct {
	Rank          int       `json:"rank"`
	ID            string    `json:"telegramId"`
	Username      string    `json:"username"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	TotalCheckins int       `json:"totalCheckins"`
	StartDate     time.Time `json:"startDate"`
}

// Board is the full leaderboard response. The season is the one the
// caller asked for (or the current one); entries are ranked across all
// users regardless of their season tag.
type Board struct {
	Season    string    `json:"season"`
	Entries   []Entry   `json:"leaderboard"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Service interface {
	// Get computes the board from a full scan of the users collection,
	// truncated to the configured top-N. An empty seasonID selects the
	// current season's identifier.
	Get(ctx context.Context, seasonID string, now time.Time) (*Board, error)
}

type service struct {
	db      *firestore.Client
	seasons season.Policy
	topN    int
}

var _ Service = (*service)(nil)

func NewService(db *firestore.Client, seasons season.Policy, topN int) Service {
	if topN <= 0 {
		topN = 100
	}
	return &service{
		db:      db,
		seasons: seasons,
		topN:    topN,
	}
}

func (s *service) Get(ctx context.Context, seasonID string, now time.Time) (*Board, error) {
	if seasonID == "" {
		seasonID = s.seasons.Current(now).ID
	}

	records := make([]user.Record, 0)
	iter := s.db.Collection(user.Collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		record := user.Record{}
		if err := doc.DataTo(&record); err != nil {
			log.Warn().Err(err).Str("doc", doc.Ref.ID).Msg("skipping unreadable user record")
			continue
		}
		records = append(records, record)
	}

	return &Board{
		Season:    seasonID,
		Entries:   Rank(records, s.topN),
		UpdatedAt: now,
	}, nil
}

// Rank orders records by best streak, then total check-ins, then
// earliest start date, and assigns dense 1-based ranks before
// truncating to the top-N window. The sort is stable so full ties keep
// their input order.
func Rank(records []user.Record, topN int) []Entry {
	entries := make([]Entry, 0, len(records))
	for i := range records {
		r := &records[i]
		entries = append(entries, Entry{
			ID:            r.ID,
			Username:      r.DisplayName(),
			CurrentStreak: streak.Current(r.Checkins),
			BestStreak:    r.BestStreak,
			TotalCheckins: r.TotalCheckins,
			StartDate:     r.StartDate,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.BestStreak != b.BestStreak {
			return a.BestStreak > b.BestStreak
		}
		if a.TotalCheckins != b.TotalCheckins {
			return a.TotalCheckins > b.TotalCheckins
		}
		return a.StartDate.Before(b.StartDate)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
