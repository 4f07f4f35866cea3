package dss

import (
	"fmt"
	"math"
	"time"
)

// Window is an inclusive reporting interval.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window, rejecting inverted bounds.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, ErrInvalidRange
	}
	return Window{Start: start, End: end}, nil
}

// DayWindow expands a single instant to the local calendar day it falls on,
// from midnight to the last representable millisecond.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	return Window{Start: start, End: end}
}

// Days returns the working-day span, rounding partial days up.
func (w Window) Days() int {
	return int(math.Ceil(w.End.Sub(w.Start).Hours() / 24))
}

// ParseTimestamp accepts RFC3339 or a bare calendar date.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidParameter)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not RFC3339 or YYYY-MM-DD", ErrInvalidParameter, s)
}

// ParseWindow parses and validates a start/end pair.
func ParseWindow(start, end string) (Window, error) {
	from, err := ParseTimestamp(start)
	if err != nil {
		return Window{}, err
	}
	to, err := ParseTimestamp(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(from, to)
}
