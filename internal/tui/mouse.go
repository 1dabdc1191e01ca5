package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/gesture"
	"github.com/davidcortes/horario/internal/tui/commands"
)

// handleMouseMsg runs the press/move/release gesture protocol against the
// controller. Every frame mutates the local cache only; a single commit is
// issued on release.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.loading {
		return m, nil
	}

	if m.view == dateutil.ViewMonth {
		return m.handleMonthClick(msg)
	}

	g := m.geometry()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		h := m.hitTest(msg.X, msg.Y, g)
		if !h.inGrid || h.taskID == 0 {
			return m, nil
		}
		var err error
		if h.onEdge {
			err = m.ctrl.BeginResize(h.taskID, gesture.Edge(h.edge), h.rowY)
			LogGesture("begin_resize", h.taskID, msg.Y)
		} else {
			err = m.ctrl.BeginDrag(h.taskID, h.rowY)
			LogGesture("begin_drag", h.taskID, msg.Y)
		}
		if err != nil {
			return m, commands.Status(err.Error(), true)
		}
		return m, nil

	case tea.MouseActionMotion:
		switch m.ctrl.State() {
		case gesture.StateDragging:
			h := m.hitTest(msg.X, msg.Y, g)
			if !h.inGrid {
				return m, nil
			}
			// Frames that would break an invariant are discarded inside the
			// controller; the last valid frame stays on screen.
			_ = m.ctrl.DragTo(h.day, h.rowY, float64(g.gridRows))
		case gesture.StateResizing:
			row := float64(msg.Y - headerRows)
			_ = m.ctrl.ResizeTo(row, float64(g.gridRows))
		}
		return m, nil

	case tea.MouseActionRelease:
		p := m.ctrl.End()
		if p == nil {
			return m, nil
		}
		LogGesture("commit", p.TaskID, msg.Y)
		return m, commands.Commit(m.rec, *p)
	}

	return m, nil
}

// handleMonthClick jumps to the day view for the clicked month cell.
func (m Model) handleMonthClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	day, ok := m.monthCellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.view = dateutil.ViewDay
	cmd := m.navigate(day)
	return m, cmd
}
