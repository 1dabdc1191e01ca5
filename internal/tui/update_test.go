package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/config"
	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/reconcile"
	"github.com/davidcortes/horario/internal/task"
	"github.com/davidcortes/horario/internal/tui/commands"
)

type fakeSource struct {
	tasks []*task.Task
	err   error
}

func (f *fakeSource) ListRange(_ context.Context, from, to time.Time) ([]*task.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*task.Task
	for _, t := range f.tasks {
		if !t.Start.Before(from) && t.Start.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeMutator struct {
	calls int
	err   error
	last  struct {
		id         int64
		start, end time.Time
	}
}

func (f *fakeMutator) UpdateTimes(_ context.Context, id int64, start, end time.Time) (*task.Task, error) {
	f.calls++
	f.last.id = id
	f.last.start = start
	f.last.end = end
	if f.err != nil {
		return nil, f.err
	}
	return &task.Task{ID: id, Title: "moved", Start: start, End: end}, nil
}

// testModel builds a day-view model sized so one grid row is 30 minutes:
// 24 grid rows over the default 09:00 to 21:00 window.
func testModel(t *testing.T, mut *fakeMutator, tasks ...*task.Task) Model {
	t.Helper()

	cfg := config.Default()
	m := NewModel(&fakeSource{tasks: tasks}, reconcile.New(mut, nil), cfg)
	m.view = dateutil.ViewDay
	m.refDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rng, err := dateutil.Resolve(m.refDate, dateutil.ViewDay)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	m.rng = rng
	m.width = 76
	m.height = 28 // 24 grid rows after header and footer
	m.loading = false
	m.cache.Replace(tasks)
	return m
}

func testTask(id int64, startHour, startMin, endHour, endMin int) *task.Task {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &task.Task{
		ID:    id,
		Title: "Focus block",
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseDragAppliesOptimisticallyAndCommitsOnRelease(t *testing.T) {
	mut := &fakeMutator{}
	m := testModel(t, mut, testTask(1, 10, 0, 12, 0))

	// 10:00 starts one hour into the window: rows 2 through 5.
	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+3))
	m = updated.(Model)
	if got, ok := m.ctrl.ActiveTask(); !ok || got != 1 {
		t.Fatalf("ActiveTask() = %d, %v, want 1, true", got, ok)
	}

	// Hover row 9, which is 270 minutes into the window.
	updated, _ = m.Update(mouse(tea.MouseActionMotion, 10, headerRows+9))
	m = updated.(Model)

	cur, _ := m.cache.Get(1)
	wantStart := time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)
	if !cur.Start.Equal(wantStart) {
		t.Errorf("optimistic start = %v, want %v", cur.Start, wantStart)
	}
	if cur.End.Sub(cur.Start) != 2*time.Hour {
		t.Errorf("duration = %v, want 2h", cur.End.Sub(cur.Start))
	}
	if mut.calls != 0 {
		t.Fatalf("mutation issued mid-gesture: %d calls", mut.calls)
	}

	updated, cmd := m.Update(mouse(tea.MouseActionRelease, 10, headerRows+9))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("release produced no commit command")
	}
	msg := cmd()
	res, ok := msg.(commands.CommitResultMsg)
	if !ok {
		t.Fatalf("release command returned %T, want CommitResultMsg", msg)
	}
	if res.Outcome.Err != nil {
		t.Fatalf("Outcome.Err = %v", res.Outcome.Err)
	}
	if mut.calls != 1 {
		t.Errorf("mutator calls = %d, want 1", mut.calls)
	}
	if !mut.last.start.Equal(wantStart) {
		t.Errorf("committed start = %v, want %v", mut.last.start, wantStart)
	}
	if got, ok := m.ctrl.ActiveTask(); ok {
		t.Errorf("session still active on task %d after release", got)
	}
}

func TestMouseReleaseWithoutNetChangeSendsNothing(t *testing.T) {
	mut := &fakeMutator{}
	m := testModel(t, mut, testTask(1, 10, 0, 12, 0))

	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+3))
	m = updated.(Model)
	_, cmd := m.Update(mouse(tea.MouseActionRelease, 10, headerRows+3))
	if cmd != nil {
		t.Error("no-op gesture produced a commit command")
	}
	if mut.calls != 0 {
		t.Errorf("mutator calls = %d, want 0", mut.calls)
	}
}

func TestMouseResizeFromBottomEdge(t *testing.T) {
	mut := &fakeMutator{}
	m := testModel(t, mut, testTask(1, 10, 0, 12, 0))

	// Bottom edge handle sits on the block's last row, row 5.
	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+5))
	m = updated.(Model)

	// Drag two rows down: end moves from 12:00 to 13:00.
	updated, _ = m.Update(mouse(tea.MouseActionMotion, 10, headerRows+7))
	m = updated.(Model)

	cur, _ := m.cache.Get(1)
	wantEnd := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	if !cur.End.Equal(wantEnd) {
		t.Errorf("optimistic end = %v, want %v", cur.End, wantEnd)
	}
	if !cur.Start.Equal(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("start moved during bottom resize: %v", cur.Start)
	}

	_, cmd := m.Update(mouse(tea.MouseActionRelease, 10, headerRows+7))
	if cmd == nil {
		t.Fatal("release produced no commit command")
	}
	cmd()
	if !mut.last.end.Equal(wantEnd) {
		t.Errorf("committed end = %v, want %v", mut.last.end, wantEnd)
	}
}

func TestCommitFailureKeepsOptimisticStateAndShowsError(t *testing.T) {
	mut := &fakeMutator{err: errors.New("backend down")}
	m := testModel(t, mut, testTask(1, 10, 0, 12, 0))

	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+3))
	m = updated.(Model)
	updated, _ = m.Update(mouse(tea.MouseActionMotion, 10, headerRows+9))
	m = updated.(Model)
	_, cmd := m.Update(mouse(tea.MouseActionRelease, 10, headerRows+9))
	if cmd == nil {
		t.Fatal("release produced no commit command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(Model)

	if !m.statusErr || m.statusMsg == "" {
		t.Errorf("failure not surfaced: statusMsg=%q statusErr=%v", m.statusMsg, m.statusErr)
	}
	// No rollback: the cache keeps the optimistic times.
	cur, _ := m.cache.Get(1)
	wantStart := time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)
	if !cur.Start.Equal(wantStart) {
		t.Errorf("cache rolled back to %v, want %v", cur.Start, wantStart)
	}
}

func TestRangeLoadedReplacesCache(t *testing.T) {
	m := testModel(t, &fakeMutator{}, testTask(1, 10, 0, 12, 0))

	fresh := testTask(2, 14, 0, 15, 0)
	rng, _ := dateutil.Resolve(m.refDate, dateutil.ViewDay)
	updated, _ := m.Update(commands.RangeLoadedMsg{Range: rng, Tasks: []*task.Task{fresh}})
	m = updated.(Model)

	if m.cache.Len() != 1 {
		t.Fatalf("cache len = %d, want 1", m.cache.Len())
	}
	if _, ok := m.cache.Get(1); ok {
		t.Error("stale task survived range reload")
	}
	if _, ok := m.cache.Get(2); !ok {
		t.Error("fresh task missing from cache")
	}
}

func TestViewSwitchKeysChangeViewAndReload(t *testing.T) {
	m := testModel(t, &fakeMutator{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = updated.(Model)
	if m.view != dateutil.ViewWeek {
		t.Errorf("view = %v, want week", m.view)
	}
	if cmd == nil {
		t.Error("view switch did not trigger a reload")
	}
	if !m.loading {
		t.Error("loading flag not set on reload")
	}
}

func TestNavigationAbandonsActiveGesture(t *testing.T) {
	mut := &fakeMutator{}
	m := testModel(t, mut, testTask(1, 10, 0, 12, 0))

	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+3))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = updated.(Model)

	if _, ok := m.ctrl.ActiveTask(); ok {
		t.Error("gesture survived navigation")
	}
	if mut.calls != 0 {
		t.Errorf("abandoned gesture committed: %d calls", mut.calls)
	}
}

func TestGoToDatePrompt(t *testing.T) {
	m := testModel(t, &fakeMutator{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = updated.(Model)
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v, want ModePrompt", m.mode)
	}

	for _, r := range "2026-04-01" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal after enter", m.mode)
	}
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !m.refDate.Equal(want) {
		t.Errorf("refDate = %v, want %v", m.refDate, want)
	}
	if cmd == nil {
		t.Error("go-to-date did not trigger a reload")
	}
}

func TestSecondPressDuringGestureIsRejected(t *testing.T) {
	mut := &fakeMutator{}
	m := testModel(t, mut,
		testTask(1, 10, 0, 12, 0),
		testTask(2, 15, 0, 16, 0),
	)

	updated, _ := m.Update(mouse(tea.MouseActionPress, 10, headerRows+3))
	m = updated.(Model)

	// 15:00 starts six hours in: rows 12 and 13.
	updated, _ = m.Update(mouse(tea.MouseActionPress, 10, headerRows+12))
	m = updated.(Model)

	if got, _ := m.ctrl.ActiveTask(); got != 1 {
		t.Errorf("active task = %d, want original session task 1", got)
	}
}
