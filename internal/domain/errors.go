package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Task errors
	ErrTaskNotFound = errors.New("task not found for that day")

	// Plan errors
	ErrNoTasksDirective = errors.New("Planfile must include at least one TASK directive")
	ErrUnknownWeekday   = errors.New("unknown weekday")

	// Export/import errors
	ErrYearNotFound = errors.New("no progress recorded for that year")
	ErrYearMismatch = errors.New("export document year does not match its day-history")
	ErrEmptyImport  = errors.New("import document contains no yearly progress")

	// Pomodoro errors
	ErrTimerNotRunning     = errors.New("timer is not running")
	ErrTimerAlreadyRunning = errors.New("timer is already running")
	ErrTimerNotPaused      = errors.New("timer is not paused")
)
