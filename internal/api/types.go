// Package api implements the task API client and its wire format.
package api

import (
	"fmt"
	"time"

	"github.com/davidcortes/horario/internal/task"
)

// TaskJSON is the wire representation of a task. Instants travel as ISO-8601.
type TaskJSON struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Priority  string       `json:"priority"`
	Project   *ProjectJSON `json:"project,omitempty"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	CreatedAt string       `json:"createdAt,omitempty"`
}

// ProjectJSON is the wire representation of a project reference.
type ProjectJSON struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PatchJSON is the body of a reschedule mutation: one per completed gesture.
type PatchJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ErrorJSON is the body of an error response.
type ErrorJSON struct {
	Error string `json:"error"`
}

// ToWire converts a domain task to its wire form.
func ToWire(t *task.Task) TaskJSON {
	w := TaskJSON{
		ID:       t.ID,
		Title:    t.Title,
		Priority: string(t.Priority),
		Start:    t.Start.Format(time.RFC3339),
		End:      t.End.Format(time.RFC3339),
	}
	if !t.CreatedAt.IsZero() {
		w.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	if t.Project != nil {
		w.Project = &ProjectJSON{ID: t.Project.ID, Code: t.Project.Code, Name: t.Project.Name}
	}
	return w
}

// FromWire converts a wire task back to the domain form.
func FromWire(w TaskJSON) (*task.Task, error) {
	start, err := time.Parse(time.RFC3339, w.Start)
	if err != nil {
		return nil, fmt.Errorf("parsing start %q: %w", w.Start, err)
	}
	end, err := time.Parse(time.RFC3339, w.End)
	if err != nil {
		return nil, fmt.Errorf("parsing end %q: %w", w.End, err)
	}

	t := &task.Task{
		ID:       w.ID,
		Title:    w.Title,
		Priority: task.Priority(w.Priority),
		Start:    start,
		End:      end,
	}
	if w.CreatedAt != "" {
		if t.CreatedAt, err = time.Parse(time.RFC3339, w.CreatedAt); err != nil {
			return nil, fmt.Errorf("parsing createdAt %q: %w", w.CreatedAt, err)
		}
	}
	if w.Project != nil {
		t.Project = &task.ProjectRef{ID: w.Project.ID, Code: w.Project.Code, Name: w.Project.Name}
	}
	return t, nil
}
