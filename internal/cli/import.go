package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprachlog/sprachlog/internal/domain"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a year's history from a JSON export",
	Long: `Import a year exported with 'sprachlog export'. The day-history is
replayed through the normal recording path, so all derived totals are
rebuilt from scratch.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var doc domain.YearExport
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return fmt.Errorf("parse export file: %w", err)
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.ImportYear(&doc); err != nil {
		return err
	}
	fmt.Printf("Imported %d day(s) into %d.\n", len(doc.YearlyProgress.DailyStats), doc.Year)
	return nil
}
