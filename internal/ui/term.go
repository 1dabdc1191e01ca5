package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/davidcortes/horario/internal/task"
)

// Color definitions for consistent styling across the UI.
var (
	colorCritical = color.New(color.FgRed, color.Bold)
	colorHigh     = color.New(color.FgYellow)
	colorMedium   = color.New(color.FgCyan)
	colorLow      = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Success/error feedback for mutations
	colorOK  = color.New(color.FgGreen)
	colorErr = color.New(color.FgRed)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatPriority colors text by task priority.
func formatPriority(p task.Priority, s string) string {
	switch p {
	case task.PriorityCritical:
		return colorCritical.Sprint(s)
	case task.PriorityHigh:
		return colorHigh.Sprint(s)
	case task.PriorityLow:
		return colorLow.Sprint(s)
	default:
		return colorMedium.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// termNotifier surfaces reconciliation results on stdout. It implements
// reconcile.Notifier for the non-TUI commands.
type termNotifier struct{}

func (termNotifier) Success(msg string) { colorOK.Println(msg) }
func (termNotifier) Error(msg string)   { colorErr.Println(msg) }
