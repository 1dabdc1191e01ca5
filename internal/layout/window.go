// Package layout computes the visual placement of tasks inside a day column.
// It is pure: no clocks, no storage, no side effects.
package layout

import (
	"fmt"
	"time"
)

// Window is the fixed time-of-day range all layout math is clipped to.
// Positions and heights are expressed as percentages of TotalMinutes().
type Window struct {
	StartMinute int // minutes from midnight, inclusive
	EndMinute   int // minutes from midnight, exclusive
}

// DefaultWindow returns the standard 09:00-21:00 scheduling window.
func DefaultWindow() Window {
	return Window{StartMinute: 9 * 60, EndMinute: 21 * 60}
}

// NewWindow builds a Window from "HH:MM" boundaries.
func NewWindow(start, end string) (Window, error) {
	s, err := parseClock(start)
	if err != nil {
		return Window{}, fmt.Errorf("window start: %w", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return Window{}, fmt.Errorf("window end: %w", err)
	}
	if e <= s {
		return Window{}, fmt.Errorf("window end %q is not after start %q", end, start)
	}
	return Window{StartMinute: s, EndMinute: e}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TotalMinutes returns the window length in minutes.
func (w Window) TotalMinutes() int {
	return w.EndMinute - w.StartMinute
}

// MinuteOfDay returns the minutes-from-midnight component of an instant.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
