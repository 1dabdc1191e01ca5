package task

import (
	"sort"
	"time"
)

// Day identifies a calendar day as days since the Unix epoch in the task's
// location. Using an integer value type for day bucketing keeps map keys free
// of locale-sensitive string formatting.
type Day int

// DayOf returns the Day containing the given instant, in its location.
func DayOf(t time.Time) Day {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	_, offset := midnight.Zone()
	return Day((midnight.Unix() + int64(offset)) / 86400)
}

// Time returns midnight of the day in the given location.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	utc := time.Unix(int64(d)*86400, 0).UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, loc)
}

// Next returns the following day.
func (d Day) Next() Day { return d + 1 }

// Prev returns the preceding day.
func (d Day) Prev() Day { return d - 1 }

// GroupByDay buckets tasks by the calendar day their start falls on.
// Tasks within each bucket keep no particular order; packing sorts later.
func GroupByDay(tasks []*Task) map[Day][]*Task {
	buckets := make(map[Day][]*Task)
	for _, t := range tasks {
		if t == nil {
			continue
		}
		d := DayOf(t.Start)
		buckets[d] = append(buckets[d], t)
	}
	return buckets
}

// SortByStart orders tasks ascending by start time, longest first among ties.
func SortByStart(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Start.Equal(tasks[j].Start) {
			return tasks[i].Duration() > tasks[j].Duration()
		}
		return tasks[i].Start.Before(tasks[j].Start)
	})
}
