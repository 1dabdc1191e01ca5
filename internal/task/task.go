// Package task defines the core domain types for horario.
package task

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be critical, high, medium or low")
	ErrEndBeforeStart  = errors.New("end must be after start")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Priority indicates task urgency. It only affects presentation, never layout.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Valid returns true if the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority converts a string to a Priority, defaulting to medium for "".
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// ProjectRef is a lightweight reference to the project a task belongs to.
type ProjectRef struct {
	ID   int64
	Code string
	Name string
}

// Task represents a scheduled block of work.
type Task struct {
	ID        int64
	Title     string
	Priority  Priority
	Project   *ProjectRef // optional
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

// New creates a Task with validation. priority may be empty (defaults to medium).
func New(title, priority string, start, end time.Time) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}

	return &Task{
		Title:     title,
		Priority:  p,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}, nil
}

// Duration returns the scheduled length of the task.
func (t *Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// OverlapsWith returns true if this task's time range overlaps another's.
// Two ranges overlap if start1 < end2 AND start2 < end1.
func (t *Task) OverlapsWith(other *Task) bool {
	if other == nil {
		return false
	}
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// IsPast returns true if the task's end has already passed.
func (t *Task) IsPast() bool {
	return time.Now().After(t.End)
}
