package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newListCmd() *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List task definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var tasks []storage.Task
			if includeArchived {
				tasks, err = svc.TaskRepo().ListAll(ctx)
			} else {
				tasks, err = svc.TaskRepo().ListActive(ctx)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet. Try: lifeos add \"Drink water\" --streak"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			for _, t := range tasks {
				line := fmt.Sprintf("%s %s %s",
					ui.Muted.Render(shortID(t.ID)),
					t.Title,
					ui.Muted.Render("· "+describeRecurrence(t)))
				if t.StreakEnabled {
					line += " " + ui.IconStreak
				}
				if t.Archived {
					line += " " + ui.Muted.Render("(archived)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&includeArchived, "all", "a", false, "Include archived tasks")
	return cmd
}

var weekdayShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func describeRecurrence(t storage.Task) string {
	switch t.RecurrenceKind {
	case "once":
		return "once on " + t.StartDate.Format(storage.DateLayout)
	case "daily":
		return "daily"
	case "weekly":
		if len(t.Weekdays) == 0 {
			return "weekly (no weekdays set)"
		}
		return "weekly on " + joinWeekdays(t.Weekdays)
	case "monthly":
		if t.DayOfMonth == nil {
			return "monthly (no day set)"
		}
		return fmt.Sprintf("monthly on day %d", *t.DayOfMonth)
	case "custom":
		var parts []string
		if len(t.Weekdays) > 0 {
			parts = append(parts, joinWeekdays(t.Weekdays))
		}
		if t.DayOfMonth != nil {
			parts = append(parts, fmt.Sprintf("day %d", *t.DayOfMonth))
		}
		if len(parts) == 0 {
			return "custom (every day)"
		}
		return "custom: " + strings.Join(parts, " and ")
	default:
		return t.RecurrenceKind
	}
}

func joinWeekdays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(weekdayShort) {
			names = append(names, weekdayShort[d])
		}
	}
	return strings.Join(names, ",")
}
