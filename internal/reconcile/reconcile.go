// Package reconcile turns a committed gesture into one remote mutation and
// reports its outcome. The optimistic local update has already happened by the
// time Commit runs; this component only owns the network leg.
package reconcile

import (
	"context"
	"fmt"

	"github.com/davidcortes/horario/internal/gesture"
	"github.com/davidcortes/horario/internal/task"
)

// Notifier surfaces transient feedback to the operator. The transport (status
// bar, toast, log line) is the caller's concern.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Outcome is the result of one commit.
type Outcome struct {
	TaskID  int64
	Updated *task.Task // server's view on success, nil on failure
	Err     error
}

// Reconciler issues one mutation per completed gesture. It performs no
// rollback, no retry and no request de-duplication: on failure the local
// cache keeps the optimistic value until the next full refetch, and two rapid
// commits against the same task resolve as last network response wins.
type Reconciler struct {
	mutator  task.Mutator
	notifier Notifier
}

// New creates a Reconciler. A nil notifier is replaced with NopNotifier.
func New(mutator task.Mutator, notifier Notifier) *Reconciler {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Reconciler{mutator: mutator, notifier: notifier}
}

// Commit sends the proposal to the remote endpoint and reports the outcome.
// Callers run it off the UI loop (the TUI wraps it in a tea.Cmd).
func (r *Reconciler) Commit(ctx context.Context, p gesture.Proposal) Outcome {
	updated, err := r.mutator.UpdateTimes(ctx, p.TaskID, p.Start, p.End)
	if err != nil {
		r.notifier.Error(fmt.Sprintf("Failed to reschedule task: %v", err))
		return Outcome{TaskID: p.TaskID, Err: err}
	}

	r.notifier.Success(fmt.Sprintf("Task moved to %s", p.Start.Format("Mon 15:04")))
	return Outcome{TaskID: p.TaskID, Updated: updated}
}
