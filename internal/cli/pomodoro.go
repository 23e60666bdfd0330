package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprachlog/sprachlog/internal/app/pomodoro"
)

func init() {
	pomodoroCmd.Flags().IntVar(&pomodoroMinutes, "minutes", 0, "Session length (default from config)")
	pomodoroCmd.Flags().StringVar(&pomodoroDate, "date", "", "Day to credit (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(pomodoroCmd)
}

var (
	pomodoroMinutes int
	pomodoroDate    string
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro <task>",
	Short: "Run a focus session for a task",
	Long: `Run a pomodoro focus session against a study task. A session that
runs to completion is credited to the task; Ctrl-C aborts and credits
nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPomodoro,
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(pomodoroDate)
	if err != nil {
		return err
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	// Seeding up front surfaces a bad task id before the session starts.
	tasks, err := d.Tracker.Day(date)
	if err != nil {
		return err
	}
	found := false
	for _, t := range tasks {
		if t.ID == args[0] {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("task %q is not on the %s list", args[0], date)
	}

	minutes := pomodoroMinutes
	if minutes <= 0 {
		minutes = d.Config.Pomodoro.SessionMinutes
	}

	timer := pomodoro.New(time.Duration(minutes) * time.Minute)
	if err := timer.Start(); err != nil {
		return err
	}
	fmt.Printf("Focus: %s for %dmin. Ctrl-C to abort.\n", args[0], minutes)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			timer.Abort()
			fmt.Println("\nAborted. No session recorded.")
			return nil
		case <-ticker.C:
			if done := timer.Tick(time.Second); !done {
				remaining := timer.Remaining().Round(time.Second)
				fmt.Printf("\r%-8s remaining", remaining)
				continue
			}
			fmt.Println("\rSession complete.     ")
			if err := d.Tracker.RecordPomodoro(date, args[0], 1); err != nil {
				return err
			}
			fmt.Printf("Recorded 1 session (%dmin) for %s.\n", timer.FinalizedMinutes(), args[0])
			if d.Config.Pomodoro.BreakMinutes > 0 {
				fmt.Printf("Take a %d-minute break.\n", d.Config.Pomodoro.BreakMinutes)
			}
			return nil
		}
	}
}
