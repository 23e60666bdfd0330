package cli

import (
	"fmt"
	"time"

	"github.com/sprachlog/sprachlog/internal/daemon"
	"github.com/sprachlog/sprachlog/internal/domain"
)

// openApp wires a full daemon for one-shot CLI use. Callers own Close.
func openApp() (*daemon.Daemon, error) {
	return daemon.New(rootCmd.Version)
}

// resolveDate turns the shared --date flag into a day key, defaulting to
// today. Accepts "today" and "yesterday" as shorthands.
func resolveDate(flag string) (string, error) {
	switch flag {
	case "", "today":
		return domain.FormatDay(time.Now()), nil
	case "yesterday":
		return domain.FormatDay(time.Now().AddDate(0, 0, -1)), nil
	}
	if _, err := domain.ParseDay(flag); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", flag)
	}
	return flag, nil
}

// checkbox renders a task's completion state.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
