package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all items to CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "items.csv", "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	defer log.Sync()

	list, err := uc.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching items: %w", err)
	}

	csv := uc.ExportCSV()
	if exportOut == "-" {
		fmt.Println(csv)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	log.Info("exported items", zap.Int("count", len(list)), zap.String("path", exportOut))
	return nil
}
