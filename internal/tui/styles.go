package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/davidcortes/horario/internal/tui/theme"
)

// Styles holds prebuilt lipgloss styles derived from a theme.
type Styles struct {
	theme *theme.Theme

	Header     lipgloss.Style
	DayHeader  lipgloss.Style
	TodayHead  lipgloss.Style
	Gutter     lipgloss.Style
	GridEmpty  lipgloss.Style
	Block      lipgloss.Style
	BlockDrag  lipgloss.Style
	StatusOK   lipgloss.Style
	StatusErr  lipgloss.Style
	StatusInfo lipgloss.Style
	Help       lipgloss.Style
	MonthDay   lipgloss.Style
	MonthToday lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t *theme.Theme) *Styles {
	return &Styles{
		theme:      t,
		Header:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		DayHeader:  lipgloss.NewStyle().Foreground(t.Fg).Bold(true),
		TodayHead:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true),
		Gutter:     lipgloss.NewStyle().Foreground(t.FgMuted),
		GridEmpty:  lipgloss.NewStyle().Foreground(t.GridLine),
		Block:      lipgloss.NewStyle().Foreground(t.BlockText),
		BlockDrag:  lipgloss.NewStyle().Foreground(t.Fg).Background(t.DragBg).Bold(true),
		StatusOK:   lipgloss.NewStyle().Foreground(t.Success),
		StatusErr:  lipgloss.NewStyle().Foreground(t.Error),
		StatusInfo: lipgloss.NewStyle().Foreground(t.FgMuted),
		Help:       lipgloss.NewStyle().Foreground(t.FgMuted),
		MonthDay:   lipgloss.NewStyle().Foreground(t.Fg),
		MonthToday: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// Theme returns the underlying theme.
func (s *Styles) Theme() *theme.Theme {
	return s.theme
}
