package tui

import (
	"time"

	"github.com/davidcortes/horario/internal/task"
)

// taskCache is the local, optimistically-mutated copy of the visible tasks.
// It implements gesture.Store. All mutation happens synchronously on the UI
// loop, so no locking is needed.
type taskCache struct {
	order []int64
	byID  map[int64]*task.Task
}

func newTaskCache() *taskCache {
	return &taskCache{byID: make(map[int64]*task.Task)}
}

// Replace swaps in a freshly fetched task set. Entries are copied so an
// optimistic frame never mutates the caller's slice.
func (c *taskCache) Replace(tasks []*task.Task) {
	c.order = c.order[:0]
	c.byID = make(map[int64]*task.Task, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		cp := *t
		c.order = append(c.order, t.ID)
		c.byID[t.ID] = &cp
	}
}

// Get returns the cached task, or false if unknown.
func (c *taskCache) Get(id int64) (*task.Task, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// SetTimes overwrites a cached task's start and end (the optimistic apply).
func (c *taskCache) SetTimes(id int64, start, end time.Time) {
	if t, ok := c.byID[id]; ok {
		t.Start = start
		t.End = end
	}
}

// Apply overlays the server's view of a task after a successful commit.
// Responses land per task, so an out-of-order response for one task can
// never disturb another.
func (c *taskCache) Apply(t *task.Task) {
	if t == nil {
		return
	}
	if _, ok := c.byID[t.ID]; ok {
		cp := *t
		c.byID[t.ID] = &cp
	}
}

// Tasks returns the cached tasks in fetch order.
func (c *taskCache) Tasks() []*task.Task {
	out := make([]*task.Task, 0, len(c.order))
	for _, id := range c.order {
		if t, ok := c.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of cached tasks.
func (c *taskCache) Len() int {
	return len(c.byID)
}
