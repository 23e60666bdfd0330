package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprachlog/sprachlog/internal/domain"
)

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Day to show (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(todayCmd)
}

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's study tasks",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(todayDate)
	if err != nil {
		return err
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	tasks, err := d.Tracker.Day(date)
	if err != nil {
		return err
	}

	day, _ := domain.ParseDay(date)
	fmt.Printf("%s (%s)\n\n", date, domain.WeekdayOf(day))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s %s\t%s\n",
			checkbox(t.Completed), t.Emoji, t.Name, domain.FormatMinutes(t.Duration))
	}
	w.Flush()

	if note, err := d.Tracker.Note(date); err == nil && note != "" {
		fmt.Printf("\nNote: %s\n", note)
	}

	yp, err := d.Tracker.YearProgress(time.Now().Year())
	if err == nil {
		fmt.Printf("\nStreak: %d days | Level %d (%d%%) | %.1fh this year\n",
			yp.CurrentStreak, yp.Level, yp.Experience, yp.TotalHours)
	}
	return nil
}
