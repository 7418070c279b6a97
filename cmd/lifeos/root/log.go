package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

func newLogCmd() *cobra.Command {
	var (
		date   string
		water  int
		sleep  float64
		weight float64
		note   string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log or show daily wellness metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := parseDateArg(date)
			if err != nil {
				return err
			}

			patch := engine.WellnessPatch{}
			changed := false
			if cmd.Flags().Changed("water") {
				patch.WaterGlasses = &water
				changed = true
			}
			if cmd.Flags().Changed("sleep") {
				patch.SleepHours = &sleep
				changed = true
			}
			if cmd.Flags().Changed("weight") {
				w := &weight
				patch.Weight = &w
				changed = true
			}
			if cmd.Flags().Changed("note") {
				n := &note
				if note == "" {
					n = nil
				}
				patch.Note = &n
				changed = true
			}

			if changed {
				if _, err := svc.LogWellness(ctx, day, patch); err != nil {
					return err
				}
			}

			entry, err := svc.Wellness(ctx, day)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, "Wellness — "+day.Format("Mon, 02 Jan 2006")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconDrop+" Water", fmt.Sprintf("%d glasses", entry.WaterGlasses)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconSleep+" Sleep", fmt.Sprintf("%.1f h", entry.SleepHours)))
			if entry.Weight != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Weight", fmt.Sprintf("%.1f kg", *entry.Weight)))
			}
			if entry.Note != nil && *entry.Note != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ui.IconNote+" Note", *entry.Note))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&water, "water", 0, "Glasses of water")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours of sleep")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Body weight")
	cmd.Flags().StringVar(&note, "note", "", "Daily note (empty clears)")
	return cmd
}
