package user

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"habitstreak/season"
	"habitstreak/streak"
)

type Service interface {
	// GetUser returns the stored record for the given external id.
	// Returns NotFound when the user has never checked in.
	GetUser(ctx context.Context, id string) (*Record, error)

	// Profile returns the record enriched with the derived current
	// streak and the season at "now". Unknown users get a fresh zeroed
	// profile; nothing is persisted on read.
	Profile(ctx context.Context, id string, now time.Time) (*Profile, error)
}

// Collection holds one document per external user, keyed by the id
// itself. Shared with the checkin and leaderboard services.
const Collection = "users"

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

var NotFound = errors.New("user not found")

func (s *service) GetUser(ctx context.Context, id string) (*Record, error) {
	doc, err := s.db.Collection(Collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	record := Record{}
	if err := doc.DataTo(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *service) Profile(ctx context.Context, id string, now time.Time) (*Profile, error) {
	record, err := s.GetUser(ctx, id)
	if errors.Is(err, NotFound) {
		return &Profile{
			Record: Record{
				ID:        id,
				StartDate: now,
				Checkins:  []time.Time{},
			},
			CurrentSeason: s.seasons.Current(now),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		log.Warn().Err(err).Str("userId", id).Msg("stored record violates invariants")
	}
	return &Profile{
		Record:        *record,
		CurrentStreak: streak.Current(record.Checkins),
		CurrentSeason: s.seasons.Current(now),
	}, nil
}
