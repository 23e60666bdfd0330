package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the achievement catalog",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	achievements, err := d.Tracker.Achievements()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	unlocked := 0
	for _, a := range achievements {
		status := "locked"
		if a.Unlocked {
			unlocked++
			status = "unlocked"
			if a.UnlockedAt != nil {
				status = a.UnlockedAt.Format("2006-01-02")
			}
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", a.Icon, a.Name, a.Description, status)
	}
	w.Flush()

	fmt.Printf("\n%d of %d unlocked\n", unlocked, len(achievements))
	return nil
}
