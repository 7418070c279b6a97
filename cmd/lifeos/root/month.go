package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show the calendar summary for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", args[0])
				}
				year, month = parsed.Year(), parsed.Month()
			}

			location, err := resolveLocation(ctx, svc, cfg)
			if err != nil {
				return err
			}

			days, err := svc.BuildMonth(ctx, year, month, location)
			if err != nil {
				return err
			}

			header := ui.Heading(ui.IconCalendar, fmt.Sprintf("%s %d", month, year))
			if location != "" {
				header += " " + ui.Muted.Render("("+ui.IconPin+" "+location+")")
			}
			fmt.Fprintln(cmd.OutOrStdout(), header)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, day := range days {
				var b strings.Builder
				b.WriteString(ui.Key.Render(day.Date.Format("02 Mon")))
				if day.Scheduled > 0 {
					b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d", day.Completed, day.Scheduled)))
				} else {
					b.WriteString(ui.Muted.Render("  —"))
				}
				if len(day.Indicators) > 0 {
					b.WriteString("  " + strings.Join(day.Indicators, " "))
				}
				fmt.Fprintln(cmd.OutOrStdout(), b.String())
			}
			return nil
		},
	}

	return cmd
}
