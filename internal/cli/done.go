package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	doneCmd.Flags().StringVar(&doneDate, "date", "", "Day to record on (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doneCmd)
}

var doneDate string

var doneCmd = &cobra.Command{
	Use:   "done <task>",
	Short: "Mark a study task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(doneDate)
	if err != nil {
		return err
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.CompleteTask(date, args[0]); err != nil {
		return err
	}
	fmt.Printf("Done: %s on %s\n", args[0], date)
	return nil
}
