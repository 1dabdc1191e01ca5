// Package tui provides the terminal calendar surface for horario.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortes/horario/internal/config"
	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/gesture"
	"github.com/davidcortes/horario/internal/layout"
	"github.com/davidcortes/horario/internal/reconcile"
	"github.com/davidcortes/horario/internal/task"
	"github.com/davidcortes/horario/internal/tui/commands"
	"github.com/davidcortes/horario/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // "go to date" prompt is open
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source task.Source
	rec    *reconcile.Reconciler
	config *config.Config

	// Layout math
	window layout.Window

	// Theme and styles
	styles *Styles

	// State
	view    dateutil.View
	refDate time.Time
	rng     dateutil.Range
	loading bool
	mode    Mode

	// Local optimistic cache and the gesture session over it
	cache *taskCache
	ctrl  *gesture.Controller

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Transient feedback
	statusMsg  string
	statusErr  bool
	statusTime time.Time
	err        error

	nowFunc func() time.Time
}

// NewModel creates the TUI model.
func NewModel(src task.Source, rec *reconcile.Reconciler, cfg *config.Config) Model {
	w, err := layout.NewWindow(cfg.Schedule.DayStart, cfg.Schedule.DayEnd)
	if err != nil {
		w = layout.DefaultWindow()
	}

	cache := newTaskCache()

	prompt := textinput.New()
	prompt.Placeholder = "YYYY-MM-DD"
	prompt.CharLimit = 10
	prompt.Width = 12

	m := Model{
		source:  src,
		rec:     rec,
		config:  cfg,
		window:  w,
		styles:  NewStyles(theme.ByName(cfg.UI.Theme)),
		view:    dateutil.ViewWeek,
		refDate: dateutil.TruncateToDay(time.Now()),
		loading: true,
		cache:   cache,
		prompt:  prompt,
		nowFunc: time.Now,
	}
	m.ctrl = gesture.NewController(w, cache, nil)
	if rng, err := dateutil.Resolve(m.refDate, m.view); err == nil {
		m.rng = rng
	}
	return m
}

// Init starts the initial range load.
func (m Model) Init() tea.Cmd {
	return commands.LoadRange(m.source, m.refDate, m.view)
}

// Run starts the TUI program.
func Run(src task.Source, rec *reconcile.Reconciler, cfg *config.Config) error {
	return RunWithDebug(src, rec, cfg, false)
}

// RunWithDebug starts the TUI program with optional debug logging.
func RunWithDebug(src task.Source, rec *reconcile.Reconciler, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(
		NewModel(src, rec, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

// setStatus shows a transient status message.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = m.nowFunc().Add(3 * time.Second)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
