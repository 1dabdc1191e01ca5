package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/gesture"
	"github.com/davidcortes/horario/internal/reconcile"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Reschedule a task",
		Long: `Reschedule a task to a new start and end time.

This issues the same mutation a completed drag gesture would.

Example:
  horario move 42 --date=2026-03-03 --start=14:00 --end=15:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

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
			if endAt.Sub(startAt) < gesture.MinDuration {
				return fmt.Errorf("tasks must be at least %s long", gesture.MinDuration)
			}

			rec := reconcile.New(a.client, termNotifier{})
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			out := rec.Commit(ctx, gesture.Proposal{TaskID: id, Start: startAt, End: endAt})
			return out.Err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, required)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
