package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all study history",
	Long: `Delete every record: tasks, stats, notes, vocabulary, achievements
and goals. This cannot be undone.`,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		fmt.Print("This deletes ALL study history. Type 'yes' to continue: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.Reset(); err != nil {
		return err
	}
	fmt.Println("All history deleted.")
	return nil
}
