package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// ─── Day Tasks ──────────────────────────────────────────────────────────────

// ReplaceDayTasks overwrites the full task list for one day.
func (d *DB) ReplaceDayTasks(date string, tasks []domain.Task) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks WHERE date = ?`, date); err != nil {
		return err
	}
	for i, t := range tasks {
		_, err := tx.Exec(
			`INSERT INTO tasks (date, id, name, emoji, duration, completed, description, notes, link, tags, pomodoro_sessions, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			date, t.ID, t.Name, t.Emoji, t.Duration, t.Completed,
			t.Description, t.Notes, t.Link, t.Tags, t.PomodoroSessions, i,
		)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// ListDayTasks returns one day's task list in plan order.
// An empty slice means the day has not been seeded yet.
func (d *DB) ListDayTasks(date string) ([]domain.Task, error) {
	rows, err := d.db.Query(
		`SELECT id, name, emoji, duration, completed, description, notes, link, tags, pomodoro_sessions
		 FROM tasks WHERE date = ? ORDER BY position`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Emoji, &t.Duration, &t.Completed,
			&t.Description, &t.Notes, &t.Link, &t.Tags, &t.PomodoroSessions); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// SetTaskCompleted flips a task's completed flag for one day.
func (d *DB) SetTaskCompleted(date, taskID string, completed bool) error {
	result, err := d.db.Exec(
		`UPDATE tasks SET completed = ? WHERE date = ? AND id = ?`,
		completed, date, taskID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// AddTaskPomodoro records finished pomodoro sessions against a task.
func (d *DB) AddTaskPomodoro(date, taskID string, sessions int) error {
	result, err := d.db.Exec(
		`UPDATE tasks SET pomodoro_sessions = pomodoro_sessions + ? WHERE date = ? AND id = ?`,
		sessions, date, taskID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ─── Day Notes ──────────────────────────────────────────────────────────────

// SetDayNote stores the free-text note for a day.
func (d *DB) SetDayNote(date, notes string) error {
	_, err := d.db.Exec(
		`INSERT INTO day_notes (date, notes) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET notes=excluded.notes`,
		date, notes,
	)
	return err
}

// GetDayNote returns the note for a day, "" if none.
func (d *DB) GetDayNote(date string) (string, error) {
	var notes string
	err := d.db.QueryRow(`SELECT notes FROM day_notes WHERE date = ?`, date).Scan(&notes)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return notes, err
}

// ─── Daily Stats ────────────────────────────────────────────────────────────

// UpsertDailyStats replaces the stats snapshot for a day wholesale.
func (d *DB) UpsertDailyStats(s domain.DailyStats) error {
	_, err := d.db.Exec(
		`INSERT INTO daily_stats (date, tasks_completed, total_tasks, time_spent, pomodoro_sessions, completion_rate)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			tasks_completed=excluded.tasks_completed,
			total_tasks=excluded.total_tasks,
			time_spent=excluded.time_spent,
			pomodoro_sessions=excluded.pomodoro_sessions,
			completion_rate=excluded.completion_rate`,
		s.Date, s.TasksCompleted, s.TotalTasks, s.TimeSpent, s.PomodoroSessions, s.CompletionRate,
	)
	return err
}

// GetDailyStats returns a day's stats snapshot, nil if absent.
func (d *DB) GetDailyStats(date string) (*domain.DailyStats, error) {
	row := d.db.QueryRow(
		`SELECT date, tasks_completed, total_tasks, time_spent, pomodoro_sessions, completion_rate
		 FROM daily_stats WHERE date = ?`, date,
	)
	return scanDailyStats(row)
}

// ListDailyStatsForYear returns a year's full day-history ascending by date.
func (d *DB) ListDailyStatsForYear(year int) ([]domain.DailyStats, error) {
	rows, err := d.db.Query(
		`SELECT date, tasks_completed, total_tasks, time_spent, pomodoro_sessions, completion_rate
		 FROM daily_stats WHERE date BETWEEN ? AND ? ORDER BY date`,
		fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.DailyStats
	for rows.Next() {
		s, err := scanDailyStats(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *s)
	}
	return days, rows.Err()
}

// TotalTasksCompleted sums completed tasks across the whole history.
func (d *DB) TotalTasksCompleted() (int, error) {
	var total int
	err := d.db.QueryRow(`SELECT COALESCE(SUM(tasks_completed), 0) FROM daily_stats`).Scan(&total)
	return total, err
}

func scanDailyStats(s scanner) (*domain.DailyStats, error) {
	var ds domain.DailyStats
	err := s.Scan(&ds.Date, &ds.TasksCompleted, &ds.TotalTasks,
		&ds.TimeSpent, &ds.PomodoroSessions, &ds.CompletionRate)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}
	return &ds, nil
}
