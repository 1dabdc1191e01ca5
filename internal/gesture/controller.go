// Package gesture converts raw pointer movement into validated rescheduling
// proposals. It owns the one-at-a-time drag/resize session and applies every
// valid frame optimistically to the local task cache.
package gesture

import (
	"errors"
	"math"
	"time"

	"github.com/davidcortes/horario/internal/layout"
	"github.com/davidcortes/horario/internal/task"
)

// Session errors.
var (
	ErrSessionActive = errors.New("a gesture session is already active")
	ErrNoSession     = errors.New("no gesture session is active")
	ErrUnknownTask   = errors.New("task is not in the local cache")
	ErrInvalidTrack  = errors.New("track height must be positive")
)

// MinDuration is the data minimum for a task: resize frames that would shrink
// a task below it are discarded. Distinct from layout.MinBlockMinutes, which
// only affects rendering.
const MinDuration = 15 * time.Minute

// Edge identifies which end of a block a resize grabs.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// State is the session state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

// Store is the local task cache the controller mutates optimistically.
// Mutation happens synchronously on the event callback chain; persistence is
// the reconciler's job after the gesture completes.
type Store interface {
	// Get returns the cached task, or false if unknown.
	Get(id int64) (*task.Task, bool)

	// SetTimes overwrites the cached task's start and end.
	SetTimes(id int64, start, end time.Time)
}

// Proposal is the final rescheduling produced by a completed gesture.
type Proposal struct {
	TaskID int64
	Start  time.Time
	End    time.Time
}

// AcquireFunc attaches the global pointer listeners for a session and returns
// the function that detaches them. May be nil when the host wires events
// directly (as the TUI does).
type AcquireFunc func() (release func())

// Controller is the gesture state machine. One instance serves one surface;
// only a single session may be active at a time (single-pointer assumption).
// A pointer-down during an active session is rejected with ErrSessionActive.
type Controller struct {
	window layout.Window
	store  Store

	state   State
	taskID  int64
	edge    Edge
	originY float64

	originalStart time.Time
	originalEnd   time.Time

	guard *Guard
}

// NewController creates an idle controller over the given window and cache.
func NewController(w layout.Window, store Store, acquire AcquireFunc) *Controller {
	return &Controller{
		window: w,
		store:  store,
		guard:  newGuard(acquire),
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// ActiveTask returns the task owning the current session, if any.
func (c *Controller) ActiveTask() (int64, bool) {
	if c.state == StateIdle {
		return 0, false
	}
	return c.taskID, true
}

// BeginDrag starts a drag session for the task under the pointer.
func (c *Controller) BeginDrag(id int64, y float64) error {
	if err := c.begin(id, y); err != nil {
		return err
	}
	c.state = StateDragging
	return nil
}

// BeginResize starts a resize session on the given edge handle.
func (c *Controller) BeginResize(id int64, edge Edge, y float64) error {
	if edge != EdgeTop && edge != EdgeBottom {
		return errors.New("edge must be top or bottom")
	}
	if err := c.begin(id, y); err != nil {
		return err
	}
	c.state = StateResizing
	c.edge = edge
	return nil
}

func (c *Controller) begin(id int64, y float64) error {
	if c.state != StateIdle {
		return ErrSessionActive
	}
	t, ok := c.store.Get(id)
	if !ok {
		return ErrUnknownTask
	}

	c.taskID = id
	c.originY = y
	c.originalStart = t.Start
	c.originalEnd = t.End
	c.guard.Acquire()
	return nil
}

// DragTo recomputes the drag proposal for the pointer hovering a day column
// at vertical offset y, and applies it optimistically. The target day may
// differ from the task's original day; duration is preserved exactly.
func (c *Controller) DragTo(day task.Day, y, trackHeight float64) error {
	if c.state != StateDragging {
		return ErrNoSession
	}
	if trackHeight <= 0 {
		return ErrInvalidTrack
	}

	minutesFromStart := int(math.Round(y / trackHeight * float64(c.window.TotalMinutes())))
	startMinute := c.window.StartMinute + minutesFromStart

	midnight := day.Time(c.originalStart.Location())
	newStart := midnight.Add(time.Duration(startMinute) * time.Minute)
	newEnd := newStart.Add(c.originalEnd.Sub(c.originalStart))

	c.store.SetTimes(c.taskID, newStart, newEnd)
	return nil
}

// ResizeTo recomputes the resize proposal for the pointer at vertical offset
// y over a track of trackHeight pixels. Frames that would shrink the task
// below MinDuration are discarded: the cache keeps the last valid frame, not
// the original times.
func (c *Controller) ResizeTo(y, trackHeight float64) error {
	if c.state != StateResizing {
		return ErrNoSession
	}
	if trackHeight <= 0 {
		return ErrInvalidTrack
	}

	deltaMinutes := int(math.Round((y - c.originY) * float64(c.window.TotalMinutes()) / trackHeight))
	delta := time.Duration(deltaMinutes) * time.Minute

	cur, ok := c.store.Get(c.taskID)
	if !ok {
		return ErrUnknownTask
	}

	switch c.edge {
	case EdgeBottom:
		candidate := c.originalEnd.Add(delta)
		if candidate.Sub(cur.Start) < MinDuration {
			return nil // discard frame
		}
		c.store.SetTimes(c.taskID, cur.Start, candidate)
	case EdgeTop:
		candidate := c.originalStart.Add(delta)
		if cur.End.Sub(candidate) < MinDuration {
			return nil // discard frame
		}
		c.store.SetTimes(c.taskID, candidate, cur.End)
	}
	return nil
}

// End completes the gesture on pointer-up. It returns the proposal for the
// already-applied final state, or nil when the gesture produced no net change
// (in which case no mutation should be issued). The session always returns to
// Idle and the listener guard is released.
func (c *Controller) End() *Proposal {
	if c.state == StateIdle {
		return nil
	}

	var p *Proposal
	if t, ok := c.store.Get(c.taskID); ok {
		if !t.Start.Equal(c.originalStart) || !t.End.Equal(c.originalEnd) {
			p = &Proposal{TaskID: c.taskID, Start: t.Start, End: t.End}
		}
	}

	c.reset()
	return p
}

// Teardown destroys the session without committing anything. Safe to call in
// any state; the listener guard is released exactly once.
func (c *Controller) Teardown() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.taskID = 0
	c.edge = ""
	c.originY = 0
	c.originalStart = time.Time{}
	c.originalEnd = time.Time{}
	c.guard.Release()
}
