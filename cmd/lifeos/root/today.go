package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the tasks scheduled for a day",
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

			views, err := svc.ResolveForDate(ctx, day, location)
			if err != nil {
				return err
			}

			header := ui.Heading(ui.IconCalendar, day.Format("Mon, 02 Jan 2006"))
			if location != "" {
				header += " " + ui.Muted.Render("("+ui.IconPin+" "+location+")")
			}
			fmt.Fprintln(cmd.OutOrStdout(), header)

			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing scheduled."))
				return nil
			}

			done := 0
			for _, v := range views {
				if engine.Status(v.Record.Status) == engine.StatusCompleted {
					done++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, len(views))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, v := range views {
				line := fmt.Sprintf("%s %s %s",
					ui.StatusIcon(v.Record.Status),
					ui.Muted.Render(shortID(v.Task.ID)),
					v.Task.Title)
				if v.Task.StreakEnabled && v.Streak > 0 {
					line += " " + ui.Muted.Render(fmt.Sprintf("%s %d", ui.IconStreak, v.Streak))
				}
				if v.Record.Value != nil {
					line += " " + ui.Muted.Render("["+*v.Record.Value+"]")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}
