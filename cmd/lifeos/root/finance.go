package root

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newFinanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Track income and expenses",
	}
	cmd.AddCommand(newFinanceAddCmd(), newFinanceListCmd(), newFinanceTotalCmd())
	return cmd
}

func newFinanceAddCmd() *cobra.Command {
	var (
		date     string
		kind     string
		category string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a finance entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("amount is required")
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

			cents, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			day, err := parseDateArg(date)
			if err != nil {
				return err
			}
			fk, err := engine.ParseFinanceKind(kind)
			if err != nil {
				return err
			}
			var n *string
			if note != "" {
				n = &note
			}

			entry, err := svc.AddFinanceEntry(ctx, engine.AddFinanceInput{
				Date:        day,
				Kind:        fk,
				AmountCents: cents,
				Category:    category,
				Note:        n,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconMoney+" Logged"),
				entry.Kind,
				formatCents(entry.AmountCents),
				ui.Muted.Render("on "+entry.Date.Format("2006-01-02")))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Entry kind (income|expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	return cmd
}

func newFinanceListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List finance entries in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			entries, err := svc.ListFinance(ctx, start, end)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries in range."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMoney, "Finance"))
			for _, e := range entries {
				amount := formatCents(e.AmountCents)
				if e.Kind == string(engine.FinanceExpense) {
					amount = ui.Bad.Render("-" + amount)
				} else {
					amount = ui.Good.Render("+" + amount)
				}
				line := fmt.Sprintf("%s %s %s",
					ui.Muted.Render(e.Date.Format("2006-01-02")),
					amount,
					e.Category)
				if e.Note != nil && *e.Note != "" {
					line += " " + ui.Muted.Render("· "+*e.Note)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default first of month)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	return cmd
}

func newFinanceTotalCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show income/expense totals for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			income, expense, net, err := svc.FinanceTotals(ctx, start, end)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMoney, fmt.Sprintf("Totals %s — %s",
				start.Format("2006-01-02"), end.Format("2006-01-02"))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Income", ui.Good.Render(formatCents(income))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Expense", ui.Bad.Render(formatCents(expense))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Net", formatCents(net)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default first of month)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	return cmd
}

func parseAmount(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return int64(math.Round(f * 100)), nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	now := time.Now()
	start := engine.Date(now.Year(), now.Month(), 1)
	end := engine.DateOf(now)

	if from != "" {
		d, err := parseDateArg(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = d
	}
	if to != "" {
		d, err := parseDateArg(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = d
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("range end precedes start")
	}
	return start, end, nil
}
