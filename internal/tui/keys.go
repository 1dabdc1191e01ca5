package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg.String())

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		cmd := m.navigate(m.rng.Prev)
		return m, cmd
	case "l", "right":
		cmd := m.navigate(m.rng.Next)
		return m, cmd
	case "t":
		cmd := m.navigate(dateutil.TruncateToDay(m.nowFunc()))
		return m, cmd

	// View switching
	case "d":
		return m.switchView(dateutil.ViewDay)
	case "w":
		return m.switchView(dateutil.ViewWeek)
	case "m":
		return m.switchView(dateutil.ViewMonth)

	case "r":
		cmd := m.reload()
		return m, cmd

	// Go to date prompt
	case "g":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil

	// Copy the visible schedule to the clipboard
	case "y":
		text := m.scheduleText()
		if err := clipboard.WriteAll(text); err != nil {
			return m, commands.Status(fmt.Sprintf("Copy failed: %v", err), true)
		}
		return m, commands.Status("Schedule copied to clipboard", false)
	}

	return m, nil
}

// handlePromptKeys handles keys while the go-to-date prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		date, err := dateutil.ParseDate(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()
		if err != nil {
			return m, commands.Status(fmt.Sprintf("Bad date: %v", err), true)
		}
		cmd := m.navigate(date)
		return m, cmd
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// switchView changes the view kind, keeping the reference date.
func (m Model) switchView(v dateutil.View) (tea.Model, tea.Cmd) {
	if m.view == v {
		return m, nil
	}
	m.ctrl.Teardown()
	m.view = v
	cmd := m.reload()
	return m, cmd
}
