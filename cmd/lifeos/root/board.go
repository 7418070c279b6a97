package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive today view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := parseDateArg(date)
			if err != nil {
				return err
			}
			location, err := resolveLocation(ctx, svc, cfg)
			if err != nil {
				return err
			}

			return tui.RunBoard(ctx, svc, day, location, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}
