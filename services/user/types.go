package user

import (
	"fmt"
	"time"

	"habitstreak/dates"
	"habitstreak/season"
)

// Record is the single persisted document per external user.
// Field names match the wire format the bot front end already speaks.
type Record struct {
	ID            string      `json:"telegramId" firestore:"telegramId"`
	Username      string      `json:"username,omitempty" firestore:"username,omitempty"`
	StartDate     time.Time   `json:"startDate" firestore:"startDate"`
	TotalCheckins int         `json:"totalCheckins" firestore:"totalCheckins"`
	BestStreak    int         `json:"bestStreak" firestore:"bestStreak"`
	Checkins      []time.Time `json:"checkins" firestore:"checkins"`
	LastCheckin   *time.Time  `json:"lastCheckin,omitempty" firestore:"lastCheckin,omitempty"`
	Season        string      `json:"season,omitempty" firestore:"season,omitempty"`
	UpdatedAt     time.Time   `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Profile is a Record enriched with the derived fields every read
// endpoint returns alongside the stored data.
type Profile struct {
	Record
	CurrentStreak int           `json:"currentStreak"`
	CurrentSeason season.Season `json:"currentSeason"`
}

// DisplayName returns the stored username, or a deterministic
// placeholder derived from the trailing characters of the id.
func (r *Record) DisplayName() string {
	if r.Username != "" {
		return r.Username
	}
	return DefaultDisplayName(r.ID)
}

// DefaultDisplayName builds the placeholder name for users who never
// set one: "User_" plus the last four characters of the id.
func DefaultDisplayName(id string) string {
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return "User_" + id
}

// Validate checks the invariants every stored record must hold.
// A violation means a corrupted write, so callers surface it instead
// of repairing the document in place.
func (r *Record) Validate() error {
	days := dates.Unique(r.Checkins)
	if len(days) != len(r.Checkins) {
		return fmt.Errorf("record %s: duplicate calendar days in checkin history", r.ID)
	}
	if r.TotalCheckins != len(r.Checkins) {
		return fmt.Errorf("record %s: totalCheckins %d does not match history length %d", r.ID, r.TotalCheckins, len(r.Checkins))
	}
	if r.LastCheckin != nil && len(days) > 0 && !dates.SameDay(*r.LastCheckin, days[len(days)-1]) {
		return fmt.Errorf("record %s: lastCheckin is not the most recent day in history", r.ID)
	}
	return nil
}
