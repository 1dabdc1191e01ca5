package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		view string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a date range",
		Long: `List all tasks scheduled within a day, week, or month.

If no date is specified, the range containing today is used.`,
		Example: `  horario list
  horario list --view=week
  horario list --date=2026-03-02 --view=month`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ref, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			rng, err := dateutil.Resolve(ref, dateutil.View(view))
			if err != nil {
				return err
			}

			tasks, err := a.client.ListRange(context.Background(), rng.Start, rng.End)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found in the specified range.")
				return nil
			}

			width := termWidth()
			var currentDate string
			for _, t := range tasks {
				day := t.Start.Format("2006-01-02")
				if day != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Println(formatHeader(fmt.Sprintf("=== %s ===", t.Start.Format("Mon, Jan 2 2006"))))
					currentDate = day
				}

				title := t.Title
				// id + times + padding take roughly 24 columns
				if max := width - 24; max > 3 && len(title) > max {
					title = title[:max-1] + "…"
				}
				line := fmt.Sprintf("  #%-4d %s-%s  %s",
					t.ID,
					t.Start.Format("15:04"),
					t.End.Format("15:04"),
					title,
				)
				fmt.Println(formatPriority(t.Priority, line))
				if t.Project != nil {
					fmt.Println(formatMuted(fmt.Sprintf("        %s · %s", t.Project.Code, t.Project.Name)))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&view, "view", "day", "Range kind: day, week, or month")

	return cmd
}
