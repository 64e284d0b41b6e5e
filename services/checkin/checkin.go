package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"habitstreak/dates"
	"habitstreak/season"
	"habitstreak/services/user"
	"habitstreak/streak"
	"habitstreak/utils"
)

// ErrAlreadyCheckedIn is the one domain-level rejection: the user
// already has a check-in for the current calendar day. It is not a
// storage failure and callers render it differently.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// Result reports the outcome of a successful check-in.
type Result struct {
	Success        bool `json:"success"`
	CurrentStreak  int  `json:"currentStreak"`
	TotalCheckins  int  `json:"totalCheckins"`
	BestStreak     int  `json:"bestStreak"`
	IsFirstCheckin bool `json:"isFirstCheckin"`
}

type Service interface {
	// Checkin records a check-in for the user on the calendar day of
	// "now". The read-modify-write runs as a single Firestore
	// transaction so concurrent calls for the same user cannot both
	// observe "no check-in today".
	Checkin(ctx context.Context, userID string, now time.Time) (*Result, error)
}

type service struct {
	db      *firestore.Client
	seasons season.Policy
}

var _ Service = (*service)(nil)

func NewService(db *firestore.Client, seasons season.Policy) Service {
	return &service{
		db:      db,
		seasons: seasons,
	}
}

func (s *service) Checkin(ctx context.Context, userID string, now time.Time) (*Result, error) {
	today := dates.Day(now)
	currentSeason := s.seasons.Current(today)
	ref := s.db.Collection(user.Collection).Doc(userID)

	var result *Result
	err := s.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		if err != nil {
			record := newRecord(userID, today, currentSeason.ID)
			result = &Result{
				Success:        true,
				CurrentStreak:  1,
				TotalCheckins:  1,
				BestStreak:     1,
				IsFirstCheckin: true,
			}
			return tx.Set(ref, record)
		}

		record := user.Record{}
		if err := doc.DataTo(&record); err != nil {
			return err
		}
		if err := record.Validate(); err != nil {
			return fmt.Errorf("refusing check-in on corrupt record: %w", err)
		}

		result, err = advance(&record, today)
		if err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "totalCheckins", Value: firestore.Increment(1)},
			{Path: "bestStreak", Value: result.BestStreak},
			{Path: "checkins", Value: firestore.ArrayUnion(today)},
			{Path: "lastCheckin", Value: today},
			{Path: "season", Value: currentSeason.ID},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyCheckedIn) {
			log.Warn().Err(err).Str("userId", userID).Msg("check-in transaction failed")
		}
		return nil, err
	}
	return result, nil
}

// newRecord builds the document written on a user's very first check-in.
func newRecord(userID string, today time.Time, seasonID string) user.Record {
	return user.Record{
		ID:            userID,
		StartDate:     today,
		TotalCheckins: 1,
		BestStreak:    1,
		Checkins:      []time.Time{today},
		LastCheckin:   utils.ToPointer(today),
		Season:        seasonID,
	}
}

// advance applies the transition rules to an existing record without
// mutating it. The prior streak is computed from the history before
// today is inserted, so a consecutive day extends the run the user
// actually ended on.
func advance(record *user.Record, today time.Time) (*Result, error) {
	if record.LastCheckin != nil && dates.SameDay(*record.LastCheckin, today) {
		return nil, ErrAlreadyCheckedIn
	}

	newStreak := 1
	yesterday := today.AddDate(0, 0, -1)
	if record.LastCheckin != nil && dates.SameDay(*record.LastCheckin, yesterday) {
		newStreak = streak.Current(record.Checkins) + 1
	}

	best := record.BestStreak
	if newStreak > best {
		best = newStreak
	}

	return &Result{
		Success:       true,
		CurrentStreak: newStreak,
		TotalCheckins: record.TotalCheckins + 1,
		BestStreak:    best,
	}, nil
}
