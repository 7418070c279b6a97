package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location [tag]",
		Short: "Show or set the current location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				if err := svc.SetCurrentLocation(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPin+" Location set to"), args[0])
				return nil
			}

			loc, err := svc.CurrentLocation(ctx)
			if err != nil {
				return err
			}
			if loc == "" {
				loc = cfg.DefaultLocation
			}
			if loc == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No location set; all location-restricted tasks are treated by their lists."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconPin+" Location", loc))
			return nil
		},
	}

	return cmd
}
