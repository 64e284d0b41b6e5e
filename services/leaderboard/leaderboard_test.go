package leaderboard

import (
	"testing"
	"time"

	"habitstreak/services/user"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(id string, best, total int, start time.Time, checkins ...time.Time) user.Record {
	return user.Record{
		ID:            id,
		StartDate:     start,
		TotalCheckins: total,
		BestStreak:    best,
		Checkins:      checkins,
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRankOrdering(t *testing.T) {
	jan := day("2025-01-01")
	feb := day("2025-02-01")

	tests := []struct {
		name    string
		records []user.Record
		want    []string
	}{
		{
			"higher best streak wins",
			[]user.Record{
				rec("low", 3, 20, jan),
				rec("high", 5, 10, feb),
			},
			[]string{"high", "low"},
		},
		{
			"total check-ins break a best-streak tie",
			[]user.Record{
				rec("fewer", 5, 10, jan),
				rec("more", 5, 12, feb),
			},
			[]string{"more", "fewer"},
		},
		{
			"earlier start breaks a full numeric tie",
			[]user.Record{
				rec("newer", 5, 10, feb),
				rec("older", 5, 10, jan),
			},
			[]string{"older", "newer"},
		},
		{
			"identical keys keep input order",
			[]user.Record{
				rec("first", 5, 10, jan),
				rec("second", 5, 10, jan),
			},
			[]string{"first", "second"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Rank(tt.records, 100))
			if len(got) != len(tt.want) {
				t.Fatalf("Rank() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRankDenseRanksAndTruncation(t *testing.T) {
	jan := day("2025-01-01")
	records := make([]user.Record, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, rec(string(rune('a'+i)), 10-i, 10, jan))
	}

	got := Rank(records, 5)
	if len(got) != 5 {
		t.Fatalf("Rank() returned %d entries after truncation, want 5", len(got))
	}
	for i, e := range got {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d, want %d", i, e.Rank, i+1)
		}
	}
}

func TestRankComputesCurrentStreak(t *testing.T) {
	r := rec("u1", 4, 5, day("2025-03-01"),
		day("2025-03-01"), day("2025-03-09"), day("2025-03-10"))
	got := Rank([]user.Record{r}, 10)
	if got[0].CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got[0].CurrentStreak)
	}
}

func TestRankDefaultsUsername(t *testing.T) {
	r := rec("987654321", 1, 1, day("2025-03-01"), day("2025-03-01"))
	got := Rank([]user.Record{r}, 10)
	if got[0].Username != "User_4321" {
		t.Errorf("Username = %q, want %q", got[0].Username, "User_4321")
	}
}
