package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/api"
	"github.com/davidcortes/horario/internal/config"
	"github.com/davidcortes/horario/internal/reconcile"
	"github.com/davidcortes/horario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	client *api.Client
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{
		client: api.NewClient(cfg.Server.BaseURL),
		config: cfg,
	}

	a.root = &cobra.Command{
		Use:   "horario",
		Short: "A terminal calendar with drag-and-drop rescheduling",
		Long: `Horario is a terminal calendar for day, week, and month planning.

It lays out overlapping tasks side by side, lets you drag a block to a
new slot or resize its edges with the mouse, and persists each completed
gesture against a task API.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rec := reconcile.New(a.client, reconcile.NopNotifier{})
			return tui.RunWithDebug(a.client, rec, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a file in the working directory)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.serveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("horario %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
