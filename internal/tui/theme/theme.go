// Package theme provides color themes for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/davidcortes/horario/internal/task"
)

// Theme holds the colors the calendar surface is drawn with.
type Theme struct {
	Bg        lipgloss.Color
	Fg        lipgloss.Color
	FgMuted   lipgloss.Color
	Accent    lipgloss.Color
	GridLine  lipgloss.Color
	TodayBg   lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	DragBg    lipgloss.Color
	BlockText lipgloss.Color

	Critical lipgloss.Color
	High     lipgloss.Color
	Medium   lipgloss.Color
	Low      lipgloss.Color
}

// Dark is the default theme.
func Dark() *Theme {
	return &Theme{
		Bg:        lipgloss.Color("#1e1e2e"),
		Fg:        lipgloss.Color("#cdd6f4"),
		FgMuted:   lipgloss.Color("#6c7086"),
		Accent:    lipgloss.Color("#89b4fa"),
		GridLine:  lipgloss.Color("#313244"),
		TodayBg:   lipgloss.Color("#2a2b3c"),
		Success:   lipgloss.Color("#a6e3a1"),
		Error:     lipgloss.Color("#f38ba8"),
		DragBg:    lipgloss.Color("#45475a"),
		BlockText: lipgloss.Color("#11111b"),
		Critical:  lipgloss.Color("#f38ba8"),
		High:      lipgloss.Color("#fab387"),
		Medium:    lipgloss.Color("#89b4fa"),
		Low:       lipgloss.Color("#6c7086"),
	}
}

// Light is the alternative theme.
func Light() *Theme {
	return &Theme{
		Bg:        lipgloss.Color("#eff1f5"),
		Fg:        lipgloss.Color("#4c4f69"),
		FgMuted:   lipgloss.Color("#9ca0b0"),
		Accent:    lipgloss.Color("#1e66f5"),
		GridLine:  lipgloss.Color("#ccd0da"),
		TodayBg:   lipgloss.Color("#e6e9ef"),
		Success:   lipgloss.Color("#40a02b"),
		Error:     lipgloss.Color("#d20f39"),
		DragBg:    lipgloss.Color("#bcc0cc"),
		BlockText: lipgloss.Color("#eff1f5"),
		Critical:  lipgloss.Color("#d20f39"),
		High:      lipgloss.Color("#fe640b"),
		Medium:    lipgloss.Color("#1e66f5"),
		Low:       lipgloss.Color("#9ca0b0"),
	}
}

// ByName returns the theme for a config name, defaulting to dark.
func ByName(name string) *Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// PriorityColor maps a task priority to its block color.
func (t *Theme) PriorityColor(p task.Priority) lipgloss.Color {
	switch p {
	case task.PriorityCritical:
		return t.Critical
	case task.PriorityHigh:
		return t.High
	case task.PriorityLow:
		return t.Low
	default:
		return t.Medium
	}
}
