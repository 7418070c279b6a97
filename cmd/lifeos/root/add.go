package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		kind       string
		recur      string
		weekdays   string
		dayOfMonth int
		start      string
		end        string
		remind     string
		allow      []string
		deny       []string
		streak     bool
		priority   string
		options    []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recurring task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			taskKind, err := engine.ParseTaskKind(kind)
			if err != nil {
				return err
			}
			recKind, err := engine.ParseRecurrenceKind(recur)
			if err != nil {
				return err
			}
			days, err := engine.ParseWeekdays(weekdays)
			if err != nil {
				return err
			}
			prio, err := engine.ParsePriority(priority)
			if err != nil {
				return err
			}

			startDate := engine.DateOf(time.Now())
			if start != "" {
				startDate, err = parseDateArg(start)
				if err != nil {
					return err
				}
			}
			var endDate *time.Time
			if end != "" {
				d, err := parseDateArg(end)
				if err != nil {
					return err
				}
				endDate = &d
			}
			var dom *int
			if cmd.Flags().Changed("day-of-month") {
				dom = &dayOfMonth
			}
			var reminder *string
			if remind != "" {
				reminder = &remind
			}

			t, err := svc.CreateTask(ctx, engine.CreateTaskInput{
				Title:          args[0],
				Kind:           taskKind,
				RecurrenceKind: recKind,
				Weekdays:       days,
				DayOfMonth:     dom,
				StartDate:      startDate,
				EndDate:        endDate,
				ReminderTime:   reminder,
				Allowed:        allow,
				Excluded:       deny,
				StreakEnabled:  streak,
				Priority:       prio,
				Options:        options,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTask+" Added"),
				t.Title,
				ui.Muted.Render("("+shortID(t.ID)+", "+t.RecurrenceKind+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "checkbox", "Task kind (checkbox|counter|dropdown|text)")
	cmd.Flags().StringVarP(&recur, "recur", "r", "daily", "Recurrence (once|daily|weekly|monthly|custom)")
	cmd.Flags().StringVarP(&weekdays, "weekdays", "w", "", "Weekdays for weekly/custom rules (e.g. mon,wed,fri)")
	cmd.Flags().IntVar(&dayOfMonth, "day-of-month", 0, "Day of month for monthly/custom rules (1-31)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (HH:MM)")
	cmd.Flags().StringSliceVar(&allow, "allow", nil, "Locations the task is limited to")
	cmd.Flags().StringSliceVar(&deny, "deny", nil, "Locations the task is hidden at")
	cmd.Flags().BoolVarP(&streak, "streak", "s", false, "Track a completion streak")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority: number or high|medium|low")
	cmd.Flags().StringSliceVar(&options, "option", nil, "Dropdown choices (dropdown kind only)")

	return cmd
}
