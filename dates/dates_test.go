package dates

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2025, 6, 15, 2, 30, 0, 0, loc) // 2025-06-14 21:30 UTC
	got := Day(in)
	want := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("SameDay() = false for two instants on the same day")
	}
	if SameDay(night, next) {
		t.Error("SameDay() = true across midnight")
	}
}

func TestUnique(t *testing.T) {
	d1 := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC) // same day as d1

	got := Unique([]time.Time{d1, d2, d3})
	if len(got) != 2 {
		t.Fatalf("Unique() returned %d days, want 2", len(got))
	}
	if !got[0].Before(got[1]) {
		t.Error("Unique() result is not ascending")
	}
	if got[1].Hour() != 0 {
		t.Error("Unique() did not truncate to midnight")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween() = %d, want 1", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Errorf("DaysBetween() reversed = %d, want -1", got)
	}
}
