package task

import (
	"errors"
	"testing"
	"time"
)

func mustTime(h, m int) time.Time {
	return time.Date(2026, 3, 9, h, m, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tk, err := New("Review budget", "high", mustTime(9, 0), mustTime(10, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tk.Priority != PriorityHigh {
			t.Errorf("expected high priority, got %s", tk.Priority)
		}
		if tk.Duration() != time.Hour {
			t.Errorf("expected 1h duration, got %v", tk.Duration())
		}
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := New("", "low", mustTime(9, 0), mustTime(10, 0))
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("default priority", func(t *testing.T) {
		tk, err := New("Standup", "", mustTime(9, 0), mustTime(9, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tk.Priority != PriorityMedium {
			t.Errorf("expected medium priority default, got %s", tk.Priority)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := New("Standup", "urgent", mustTime(9, 0), mustTime(9, 30))
		if !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := New("Standup", "low", mustTime(10, 0), mustTime(9, 0))
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Errorf("expected ErrEndBeforeStart, got %v", err)
		}
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := New("Standup", "low", mustTime(9, 0), mustTime(9, 0))
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Errorf("expected ErrEndBeforeStart, got %v", err)
		}
	})
}

func TestOverlapsWith(t *testing.T) {
	a := &Task{Start: mustTime(9, 0), End: mustTime(10, 0)}

	tests := []struct {
		name  string
		other *Task
		want  bool
	}{
		{"nil", nil, false},
		{"partial overlap", &Task{Start: mustTime(9, 30), End: mustTime(10, 30)}, true},
		{"contained", &Task{Start: mustTime(9, 15), End: mustTime(9, 45)}, true},
		{"touching end", &Task{Start: mustTime(10, 0), End: mustTime(11, 0)}, false},
		{"touching start", &Task{Start: mustTime(8, 0), End: mustTime(9, 0)}, false},
		{"disjoint", &Task{Start: mustTime(11, 0), End: mustTime(12, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.OverlapsWith(tt.other); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
