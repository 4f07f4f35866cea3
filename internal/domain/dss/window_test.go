package dss

import (
	"errors"
	"testing"
	"time"
)

func TestNewWindow_RejectsInvertedBounds(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := NewWindow(start, start.AddDate(0, 0, -1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewWindow_AllowsEqualBounds(t *testing.T) {
	at := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	w, err := NewWindow(at, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Start.Equal(w.End) {
		t.Error("expected zero-length window")
	}
}

func TestDayWindow_Bounds(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 45, 12, 0, time.Local)
	w := DayWindow(at)

	wantStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 3, 10, 23, 59, 59, 999000000, time.Local)
	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestWindowDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"ten full days", start.AddDate(0, 0, 10), 10},
		{"partial day rounds up", start.Add(36 * time.Hour), 2},
		{"zero span", start, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Window{Start: start, End: tc.end}
			if got := w.Days(); got != tc.want {
				t.Errorf("Days() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	if _, err := ParseTimestamp("2026-03-10T14:00:00Z"); err != nil {
		t.Errorf("RFC3339 should parse: %v", err)
	}
	if _, err := ParseTimestamp("2026-03-10"); err != nil {
		t.Errorf("bare date should parse: %v", err)
	}

	for _, bad := range []string{"", "yesterday", "10-03-2026", "2026/03/10"} {
		_, err := ParseTimestamp(bad)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseTimestamp(%q): expected ErrInvalidParameter, got %v", bad, err)
		}
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.End.After(w.Start) {
		t.Error("expected end after start")
	}

	if _, err := ParseWindow("2026-03-31", "2026-03-01"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := ParseWindow("", "2026-03-01"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
