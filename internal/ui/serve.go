package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/db"
	"github.com/davidcortes/horario/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var (
		listen string
		dbPath string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference task API server",
		Long: `Run the SQLite-backed task API server the calendar talks to.

The server exposes task listing, creation, deletion and the reschedule
endpoint the calendar's gestures persist through.`,
		Example: `  horario serve
  horario serve --listen=:9000 --db=/tmp/horario.db`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listen == "" {
				listen = a.config.Server.Listen
			}
			if dbPath == "" {
				dbPath = a.config.Storage.DBPath
			}

			log := serveLogger(pretty)

			repo, err := db.New(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer func() { _ = repo.Close() }()

			log.Info().Str("listen", listen).Str("db", dbPath).Msg("server starting")
			return server.New(repo, log).ListenAndServe(listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Human-readable log output")

	return cmd
}

func serveLogger(pretty bool) zerolog.Logger {
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
