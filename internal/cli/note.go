package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	noteCmd.Flags().StringVar(&noteDate, "date", "", "Day to annotate (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(noteCmd)
}

var noteDate string

var noteCmd = &cobra.Command{
	Use:   "note [text...]",
	Short: "Set or show the day's note",
	Long: `Set the free-text note for a day, or show it when no text is given.
A non-empty note counts as study activity and keeps the streak alive.`,
	RunE: runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(noteDate)
	if err != nil {
		return err
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	if len(args) == 0 {
		note, err := d.Tracker.Note(date)
		if err != nil {
			return err
		}
		if note == "" {
			fmt.Printf("No note for %s\n", date)
		} else {
			fmt.Println(note)
		}
		return nil
	}

	if err := d.Tracker.SetNote(date, strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Printf("Note saved for %s\n", date)
	return nil
}
