package gesture

import (
	"errors"
	"testing"
	"time"

	"github.com/davidcortes/horario/internal/layout"
	"github.com/davidcortes/horario/internal/task"
)

type fakeStore struct {
	tasks map[int64]*task.Task
}

func newFakeStore(tasks ...*task.Task) *fakeStore {
	s := &fakeStore{tasks: make(map[int64]*task.Task)}
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
	return s
}

func (s *fakeStore) Get(id int64) (*task.Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

func (s *fakeStore) SetTimes(id int64, start, end time.Time) {
	if t, ok := s.tasks[id]; ok {
		t.Start = start
		t.End = end
	}
}

var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func taskAt(id int64, startH, startM int, dur time.Duration) *task.Task {
	start := monday.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute)
	return &task.Task{ID: id, Title: "work", Start: start, End: start.Add(dur)}
}

// 720px track over a 720 minute window: one pixel per minute.
const trackPx = 720.0

func TestBeginRejectsSecondSession(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour), taskAt(2, 14, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	if err := c.BeginDrag(1, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.BeginDrag(2, 50); !errors.Is(err, ErrSessionActive) {
		t.Errorf("expected ErrSessionActive, got %v", err)
	}
	if err := c.BeginResize(2, EdgeTop, 50); !errors.Is(err, ErrSessionActive) {
		t.Errorf("expected ErrSessionActive, got %v", err)
	}
}

func TestBeginUnknownTask(t *testing.T) {
	c := NewController(layout.DefaultWindow(), newFakeStore(), nil)
	if err := c.BeginDrag(42, 0); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}
	if c.State() != StateIdle {
		t.Errorf("expected idle state after failed begin, got %v", c.State())
	}
}

func TestDragPreservesDuration(t *testing.T) {
	offsets := []float64{0, 1, 59.4, 180, 359.5, 719}
	for _, y := range offsets {
		orig := taskAt(1, 10, 0, 90*time.Minute)
		store := newFakeStore(orig)
		c := NewController(layout.DefaultWindow(), store, nil)

		if err := c.BeginDrag(1, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tuesday := task.DayOf(monday.AddDate(0, 0, 1))
		if err := c.DragTo(tuesday, y, trackPx); err != nil {
			t.Fatalf("drag to %v: %v", y, err)
		}

		got, _ := store.Get(1)
		if got.Duration() != 90*time.Minute {
			t.Errorf("offset %v: duration changed to %v", y, got.Duration())
		}
		if task.DayOf(got.Start) != tuesday {
			t.Errorf("offset %v: expected task on tuesday, got %v", y, got.Start)
		}
	}
}

func TestDragOffsetMapsToWindowMinutes(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	_ = c.BeginDrag(1, 0)
	// 305px of 720px = 305 minutes past 09:00 = 14:05.
	if err := c.DragTo(task.DayOf(monday), 305, trackPx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.Get(1)
	want := monday.Add(14*time.Hour + 5*time.Minute)
	if !got.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, got.Start)
	}
}

func TestResizeBottomInvariant(t *testing.T) {
	orig := taskAt(1, 10, 0, time.Hour)
	store := newFakeStore(orig)
	c := NewController(layout.DefaultWindow(), store, nil)

	if err := c.BeginResize(1, EdgeBottom, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Shrink by 40 minutes: valid (20 min remain).
	if err := c.ResizeTo(60, trackPx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := store.Get(1)
	if got.Duration() != 20*time.Minute {
		t.Errorf("expected 20m after valid shrink, got %v", got.Duration())
	}

	// Shrink by 50 then 55 minutes: both violate the 15 minute minimum and
	// must leave the last valid frame in place.
	for _, y := range []float64{50, 45} {
		if err := c.ResizeTo(y, trackPx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ = store.Get(1)
		if got.Duration() != 20*time.Minute {
			t.Errorf("frame at %v: expected clamp at 20m, got %v", y, got.Duration())
		}
	}

	// Exactly the minimum is allowed.
	if err := c.ResizeTo(55, trackPx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = store.Get(1)
	if got.Duration() != MinDuration {
		t.Errorf("expected exact minimum %v, got %v", MinDuration, got.Duration())
	}

	p := c.End()
	if p == nil {
		t.Fatal("expected a proposal")
	}
	if p.End.Sub(p.Start) < MinDuration {
		t.Errorf("committed duration %v below minimum", p.End.Sub(p.Start))
	}
}

func TestResizeTopInvariant(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	if err := c.BeginResize(1, EdgeTop, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pushing the start down by 50 minutes leaves 10, below the minimum:
	// the frame is discarded and the cache keeps the original hour.
	_ = c.ResizeTo(150, trackPx)
	got, _ := store.Get(1)
	if got.Duration() != time.Hour {
		t.Errorf("expected discarded frame to keep 1h, got %v", got.Duration())
	}

	// 30 minutes is fine.
	_ = c.ResizeTo(130, trackPx)
	got, _ = store.Get(1)
	if got.Duration() != 30*time.Minute {
		t.Errorf("expected 30m, got %v", got.Duration())
	}
	if !got.End.Equal(monday.Add(11 * time.Hour)) {
		t.Errorf("top resize moved the end: %v", got.End)
	}
}

func TestResizeGrow(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	_ = c.BeginResize(1, EdgeBottom, 200)
	_ = c.ResizeTo(245, trackPx)

	got, _ := store.Get(1)
	if got.Duration() != time.Hour+45*time.Minute {
		t.Errorf("expected 1h45m, got %v", got.Duration())
	}
}

func TestEndNoNetChange(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	_ = c.BeginDrag(1, 60)
	// Move away and back to the original slot.
	_ = c.DragTo(task.DayOf(monday), 120, trackPx)
	_ = c.DragTo(task.DayOf(monday), 60, trackPx)

	if p := c.End(); p != nil {
		t.Errorf("expected nil proposal for no-op gesture, got %+v", p)
	}
	if c.State() != StateIdle {
		t.Errorf("expected idle after end, got %v", c.State())
	}
}

func TestEndWithoutSession(t *testing.T) {
	c := NewController(layout.DefaultWindow(), newFakeStore(), nil)
	if p := c.End(); p != nil {
		t.Errorf("expected nil proposal, got %+v", p)
	}
}

func TestGuardScopedToSession(t *testing.T) {
	acquired, released := 0, 0
	acquire := func() func() {
		acquired++
		return func() { released++ }
	}

	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, acquire)

	_ = c.BeginDrag(1, 0)
	if acquired != 1 {
		t.Fatalf("expected 1 acquire, got %d", acquired)
	}

	c.End()
	if released != 1 {
		t.Errorf("expected 1 release after end, got %d", released)
	}

	// Teardown after end must not release again.
	c.Teardown()
	if released != 1 {
		t.Errorf("release not idempotent: got %d", released)
	}

	// A fresh session acquires again.
	_ = c.BeginResize(1, EdgeBottom, 0)
	c.Teardown()
	if acquired != 2 || released != 2 {
		t.Errorf("expected 2/2 acquire/release, got %d/%d", acquired, released)
	}
}

func TestTeardownCommitsNothing(t *testing.T) {
	store := newFakeStore(taskAt(1, 10, 0, time.Hour))
	c := NewController(layout.DefaultWindow(), store, nil)

	_ = c.BeginDrag(1, 60)
	_ = c.DragTo(task.DayOf(monday), 180, trackPx)

	c.Teardown()
	if c.State() != StateIdle {
		t.Errorf("expected idle after teardown, got %v", c.State())
	}

	// The optimistic frame remains in the cache; only the commit is skipped.
	got, _ := store.Get(1)
	if got.Start.Equal(monday.Add(10 * time.Hour)) {
		t.Error("expected optimistic frame to remain after teardown")
	}
}
