package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newDoCmd() *cobra.Command {
	var (
		date  string
		value string
	)

	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task for a day",
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

			var val *string
			if cmd.Flags().Changed("value") {
				val = &value
			}
			if err := svc.CompleteTask(ctx, id, day, val); err != nil {
				return err
			}

			streak, err := svc.CurrentStreak(ctx, id, day)
			if err != nil {
				return err
			}
			out := fmt.Sprintf("%s %s", ui.Good.Render(ui.IconDone+" Completed"), ui.Muted.Render(shortID(id)))
			if streak > 1 {
				out += " " + ui.Warn.Render(fmt.Sprintf("%s %d in a row", ui.IconStreak, streak))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&value, "value", "v", "", "Value for counter/dropdown/text tasks")
	return cmd
}
