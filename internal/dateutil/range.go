package dateutil

import (
	"errors"
	"time"
)

// ErrInvalidView is returned for unknown view modes.
var ErrInvalidView = errors.New("view must be day, week or month")

// View is the calendar view mode.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Valid returns true if the view is a known value.
func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	default:
		return false
	}
}

// Range is a resolved visible range: the concrete start/end of what a view
// shows for a reference date, plus the reference dates of the adjacent pages.
// End is exclusive.
type Range struct {
	Date  time.Time
	View  View
	Start time.Time
	End   time.Time
	Prev  time.Time
	Next  time.Time
}

// Resolve computes the visible range for a reference date and view mode.
// Week pages start on Monday; month pages cover the calendar month.
func Resolve(date time.Time, view View) (Range, error) {
	if !view.Valid() {
		return Range{}, ErrInvalidView
	}

	date = TruncateToDay(date)
	r := Range{Date: date, View: view}

	switch view {
	case ViewDay:
		r.Start = date
		r.End = date.AddDate(0, 0, 1)
		r.Prev = date.AddDate(0, 0, -1)
		r.Next = date.AddDate(0, 0, 1)
	case ViewWeek:
		r.Start = WeekStart(date)
		r.End = r.Start.AddDate(0, 0, 7)
		r.Prev = date.AddDate(0, 0, -7)
		r.Next = date.AddDate(0, 0, 7)
	case ViewMonth:
		r.Start = MonthStart(date)
		r.End = r.Start.AddDate(0, 1, 0)
		r.Prev = date.AddDate(0, -1, 0)
		r.Next = date.AddDate(0, 1, 0)
	}

	return r, nil
}

// Days returns every day in the range, in order.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains returns true if the instant falls within the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
