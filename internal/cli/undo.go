package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	undoCmd.Flags().StringVar(&undoDate, "date", "", "Day to correct (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(undoCmd)
}

var undoDate string

var undoCmd = &cobra.Command{
	Use:   "undo <task>",
	Short: "Revert a completed task",
	Long: `Revert a task to not completed. Stats and streaks rewind to match;
achievements already unlocked stay unlocked.`,
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(undoDate)
	if err != nil {
		return err
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.UncompleteTask(date, args[0]); err != nil {
		return err
	}
	fmt.Printf("Reverted: %s on %s\n", args[0], date)
	return nil
}
