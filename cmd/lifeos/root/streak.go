package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newStreakCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "streak <id>",
		Short: "Show a task's streak statistics",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveTaskID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			day, err := parseDateArg(date)
			if err != nil {
				return err
			}

			t, err := svc.TaskRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("task not found: %s", args[0])
			}

			stats, err := svc.StreakStats(ctx, id, day)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconStreak, t.Title))
			if !t.StreakEnabled {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Streak tracking is disabled for this task."))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current streak", stats.Current))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Longest streak", stats.Longest))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completions", fmt.Sprintf("%d of %d scheduled", stats.TotalCompletions, stats.TotalOccurrences)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completion rate", fmt.Sprintf("%.1f%%", stats.CompletionRate)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Count through this date (YYYY-MM-DD, default today)")
	return cmd
}
