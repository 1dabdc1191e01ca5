package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task to your schedule.

Example:
  horario add "Sprint review" --date=2026-03-02 --start=09:00 --end=10:30 --priority=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			startAt, err := combine(day, start)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			endAt, err := combine(day, end)
			if err != nil {
				return fmt.Errorf("parsing --end: %w", err)
			}

			t, err := task.New(args[0], priority, startAt, endAt)
			if err != nil {
				return err
			}

			if err := a.client.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created task #%d: %s [%s] %s %s-%s\n",
				t.ID,
				t.Title,
				t.Priority,
				t.Start.Format("2006-01-02"),
				t.Start.Format("15:04"),
				t.End.Format("15:04"),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: critical, high, medium or low")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// combine attaches an HH:MM clock time to a date.
func combine(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
