package task

import (
	"context"
	"time"
)

// Source resolves the set of tasks visible within a date range. It is the
// inbound boundary of the scheduling surface; implementations may be a remote
// API client or a local store.
type Source interface {
	// ListRange returns all tasks whose start falls within [from, to).
	ListRange(ctx context.Context, from, to time.Time) ([]*Task, error)
}

// Mutator persists a rescheduling. One call is issued per completed gesture.
type Mutator interface {
	// UpdateTimes moves a task to the given start/end instants.
	UpdateTimes(ctx context.Context, id int64, start, end time.Time) (*Task, error)
}

// Repository is the full storage interface implemented by the reference server
// backend. The TUI only ever needs Source and Mutator.
type Repository interface {
	Source
	Mutator

	// CreateTask adds a new task and fills in its ID.
	CreateTask(ctx context.Context, t *Task) error

	// GetTask retrieves a task by ID, or nil if absent.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
