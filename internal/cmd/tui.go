package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rhartono/fitout-tracker/internal/tui"
)

var tuiExportPath string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiExportPath, "export-path", "items.csv", "file the in-dashboard CSV export writes to")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer log.Sync()

	debounce := time.Duration(cfg.UI.SearchDebounceMs) * time.Millisecond
	app := tui.NewApp(uc, debounce, tuiExportPath, log)
	return app.Run()
}
