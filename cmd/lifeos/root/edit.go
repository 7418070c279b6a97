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

func newEditCmd() *cobra.Command {
	var (
		title      string
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
		Use:   "edit <id>",
		Short: "Edit a task; only changed flags are applied",
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

			patch := engine.TaskPatch{}
			flags := cmd.Flags()

			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("kind") {
				k, err := engine.ParseTaskKind(kind)
				if err != nil {
					return err
				}
				patch.Kind = &k
			}
			if flags.Changed("recur") {
				r, err := engine.ParseRecurrenceKind(recur)
				if err != nil {
					return err
				}
				patch.RecurrenceKind = &r
			}
			if flags.Changed("weekdays") {
				days, err := engine.ParseWeekdays(weekdays)
				if err != nil {
					return err
				}
				patch.Weekdays = &days
			}
			if flags.Changed("day-of-month") {
				dom := &dayOfMonth
				if dayOfMonth == 0 {
					dom = nil
				}
				patch.DayOfMonth = &dom
			}
			if flags.Changed("start") {
				d, err := parseDateArg(start)
				if err != nil {
					return err
				}
				patch.StartDate = &d
			}
			if flags.Changed("end") {
				var e *time.Time
				if end != "" {
					d, err := parseDateArg(end)
					if err != nil {
						return err
					}
					e = &d
				}
				patch.EndDate = &e
			}
			if flags.Changed("remind") {
				r := &remind
				if remind == "" {
					r = nil
				}
				patch.ReminderTime = &r
			}
			if flags.Changed("allow") {
				patch.Allowed = &allow
			}
			if flags.Changed("deny") {
				patch.Excluded = &deny
			}
			if flags.Changed("streak") {
				patch.StreakEnabled = &streak
			}
			if flags.Changed("priority") {
				p, err := engine.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if flags.Changed("option") {
				patch.Options = &options
			}

			t, err := svc.UpdateTask(ctx, id, patch)
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("task not found: %s", shortID(id))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconTask+" Updated"),
				t.Title,
				ui.Muted.Render("("+shortID(t.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Task kind (checkbox|counter|dropdown|text)")
	cmd.Flags().StringVarP(&recur, "recur", "r", "", "Recurrence (once|daily|weekly|monthly|custom)")
	cmd.Flags().StringVarP(&weekdays, "weekdays", "w", "", "Weekdays for weekly/custom rules (e.g. mon,wed,fri)")
	cmd.Flags().IntVar(&dayOfMonth, "day-of-month", 0, "Day of month for monthly/custom rules (0 clears)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (HH:MM, empty clears)")
	cmd.Flags().StringSliceVar(&allow, "allow", nil, "Locations the task is limited to")
	cmd.Flags().StringSliceVar(&deny, "deny", nil, "Locations the task is hidden at")
	cmd.Flags().BoolVarP(&streak, "streak", "s", false, "Track a completion streak")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: number or high|medium|low")
	cmd.Flags().StringSliceVar(&options, "option", nil, "Dropdown choices (dropdown kind only)")

	return cmd
}
