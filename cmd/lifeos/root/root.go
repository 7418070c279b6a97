package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chinmayanaik123/lifeOS/internal/logging"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig   string
	flagDB       string
	flagLocation string
)

var rootCmd = &cobra.Command{
	Use:           "lifeos",
	Short:         "lifeOS — local-first lifestyle tracker",
	Long:          "lifeOS tracks recurring tasks, streaks, daily wellness metrics and finances from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file path")
	rootCmd.PersistentFlags().StringVarP(&flagLocation, "location", "l", "", "Location override for this invocation")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newListCmd(),
		newTodayCmd(),
		newDoCmd(),
		newSkipCmd(),
		newResetCmd(),
		newStreakCmd(),
		newMonthCmd(),
		newLogCmd(),
		newFinanceCmd(),
		newLocationCmd(),
		newArchiveCmd(),
		newRestoreCmd(),
		newRemoveCmd(),
		newBoardCmd(),
	)

	defer func() { _ = logging.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
