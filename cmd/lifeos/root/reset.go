package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newResetCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Return a task's day to pending",
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
			if err := svc.ResetTask(ctx, id, day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconPending+" Reset"), ui.Muted.Render(shortID(id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}
