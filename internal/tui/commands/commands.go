// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/gesture"
	"github.com/davidcortes/horario/internal/reconcile"
	"github.com/davidcortes/horario/internal/task"
)

// RangeLoadedMsg is sent when the visible range's tasks are loaded.
type RangeLoadedMsg struct {
	Range dateutil.Range
	Tasks []*task.Task
}

// CommitResultMsg is sent when a gesture's mutation resolves.
type CommitResultMsg struct {
	Outcome reconcile.Outcome
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg   string
	IsErr bool
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadRange resolves a reference date + view into a range and fetches its tasks.
func LoadRange(src task.Source, date time.Time, view dateutil.View) tea.Cmd {
	return func() tea.Msg {
		rng, err := dateutil.Resolve(date, view)
		if err != nil {
			return ErrMsg{Err: err}
		}

		tasks, err := src.ListRange(context.Background(), rng.Start, rng.End)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return RangeLoadedMsg{Range: rng, Tasks: tasks}
	}
}

// Commit sends a completed gesture's proposal to the reconciler. The network
// leg runs on the command goroutine so the UI loop never blocks; no
// cancellation or retry is attached.
func Commit(rec *reconcile.Reconciler, p gesture.Proposal) tea.Cmd {
	return func() tea.Msg {
		return CommitResultMsg{Outcome: rec.Commit(context.Background(), p)}
	}
}

// Status emits a transient status message.
func Status(msg string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg, IsErr: isErr}
	}
}
