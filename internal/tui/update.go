package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.RangeLoadedMsg:
		// A fresh fetch replaces the optimistic cache wholesale: this is the
		// refetch that eventually repairs any unconfirmed optimistic state.
		m.rng = msg.Range
		m.refDate = msg.Range.Date
		m.cache.Replace(msg.Tasks)
		m.loading = false
		LogEvent("range_loaded", map[string]any{"view": string(msg.Range.View), "tasks": len(msg.Tasks)})
		return m, nil

	case commands.CommitResultMsg:
		if msg.Outcome.Err != nil {
			// Optimistic state stays; only the operator hears about it.
			cmd := m.setStatus(fmt.Sprintf("Reschedule failed: %v", msg.Outcome.Err), true)
			return m, cmd
		}
		m.cache.Apply(msg.Outcome.Updated)
		cmd := m.setStatus("Task rescheduled", false)
		return m, cmd

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, msg.IsErr)
		return m, cmd

	case commands.ClearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// reload fetches the current reference date and view.
func (m *Model) reload() tea.Cmd {
	m.loading = true
	return commands.LoadRange(m.source, m.refDate, m.view)
}

// navigate moves the reference date and refetches.
func (m *Model) navigate(to time.Time) tea.Cmd {
	// Any in-flight gesture is abandoned, never committed.
	m.ctrl.Teardown()
	m.refDate = to
	return m.reload()
}
