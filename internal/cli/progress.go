package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress [year]",
	Short: "Show yearly study progress",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		year = y
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	yp, err := d.Tracker.YearProgress(year)
	if err != nil {
		return err
	}

	fmt.Printf("Progress %d\n\n", year)
	fmt.Printf("  Total:   %.1fh across %d fully completed days\n", yp.TotalHours, yp.TotalDays)
	fmt.Printf("  Streak:  %d current, %d longest\n", yp.CurrentStreak, yp.LongestStreak)
	fmt.Printf("  Level:   %d (%d%% toward next)\n", yp.Level, yp.Experience)

	if len(yp.MonthlyStats) == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tACTIVE DAYS\tHOURS\tAVG/DAY\tBEST STREAK\tTASKS")
	for _, m := range yp.MonthlyStats {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%dmin\t%d\t%d\n",
			time.Month(m.Month), m.DaysActive, m.TotalHours,
			m.AverageDailyTime, m.BestStreak, m.TasksCompleted)
	}
	return w.Flush()
}
