package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	goalsSetCmd.Flags().IntVar(&goalDaily, "daily", 0, "Daily study time goal in minutes")
	goalsSetCmd.Flags().IntVar(&goalWeekly, "weekly", 0, "Study days per week goal")
	goalsSetCmd.Flags().IntVar(&goalMonthly, "monthly", 0, "Hours per month goal")
	goalsSetCmd.Flags().IntVar(&goalYearly, "yearly", 0, "Hours per year goal")

	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}

var (
	goalDaily   int
	goalWeekly  int
	goalMonthly int
	goalYearly  int
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show learning goals",
	RunE:  runGoals,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update learning goals",
	RunE:  runGoalsSet,
}

func runGoals(cmd *cobra.Command, args []string) error {
	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	goals, err := d.Tracker.Goals()
	if err != nil {
		return err
	}

	fmt.Printf("Daily:   %d min\n", goals.DailyTimeGoal)
	fmt.Printf("Weekly:  %d days\n", goals.WeeklyGoal)
	fmt.Printf("Monthly: %d hours\n", goals.MonthlyGoal)
	fmt.Printf("Yearly:  %d hours\n", goals.YearlyGoal)
	return nil
}

func runGoalsSet(cmd *cobra.Command, args []string) error {
	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	goals, err := d.Tracker.Goals()
	if err != nil {
		return err
	}

	if goalDaily > 0 {
		goals.DailyTimeGoal = goalDaily
	}
	if goalWeekly > 0 {
		goals.WeeklyGoal = goalWeekly
	}
	if goalMonthly > 0 {
		goals.MonthlyGoal = goalMonthly
	}
	if goalYearly > 0 {
		goals.YearlyGoal = goalYearly
	}

	if err := d.Tracker.SetGoals(goals); err != nil {
		return err
	}
	fmt.Println("Goals updated.")
	return nil
}
