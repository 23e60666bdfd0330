package sqlite

import (
	"database/sql"
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// ─── Achievements ───────────────────────────────────────────────────────────

// SeedAchievements inserts any catalog entries not yet present. Existing
// rows — including unlock state — are never touched.
func (d *DB) SeedAchievements(catalog []domain.Achievement) error {
	for _, a := range catalog {
		_, err := d.db.Exec(
			`INSERT OR IGNORE INTO achievements (id, name, description, icon, metric, threshold, unlocked, unlocked_at)
			 VALUES (?, ?, ?, ?, ?, ?, 0, NULL)`,
			a.ID, a.Name, a.Description, a.Icon, string(a.Requirement.Metric), a.Requirement.Value,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListAchievements returns the full catalog with unlock state.
func (d *DB) ListAchievements() ([]domain.Achievement, error) {
	rows, err := d.db.Query(
		`SELECT id, name, description, icon, metric, threshold, unlocked, unlocked_at
		 FROM achievements ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		var metric string
		var unlockedAt sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon,
			&metric, &a.Requirement.Value, &a.Unlocked, &unlockedAt); err != nil {
			return nil, err
		}
		a.Requirement.Metric = domain.Metric(metric)
		if unlockedAt.Valid {
			t := time.Unix(unlockedAt.Int64, 0).UTC()
			a.UnlockedAt = &t
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UnlockAchievement marks an achievement unlocked. Returns false if it was
// already unlocked (the transition is one-way and fires once).
func (d *DB) UnlockAchievement(id string, at time.Time) (bool, error) {
	result, err := d.db.Exec(
		`UPDATE achievements SET unlocked = 1, unlocked_at = ? WHERE id = ? AND unlocked = 0`,
		at.Unix(), id,
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// ReplaceAchievements overwrites the whole catalog. Used by import, which
// carries unlock state from the export document.
func (d *DB) ReplaceAchievements(catalog []domain.Achievement) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM achievements`); err != nil {
		return err
	}
	for _, a := range catalog {
		var unlockedAt any
		if a.UnlockedAt != nil {
			unlockedAt = a.UnlockedAt.Unix()
		}
		_, err := tx.Exec(
			`INSERT INTO achievements (id, name, description, icon, metric, threshold, unlocked, unlocked_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, a.Description, a.Icon, string(a.Requirement.Metric),
			a.Requirement.Value, a.Unlocked, unlockedAt,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ─── Vocabulary ─────────────────────────────────────────────────────────────

// InsertVocabulary adds a word to the vocabulary bank.
func (d *DB) InsertVocabulary(v domain.VocabularyEntry) error {
	_, err := d.db.Exec(
		`INSERT INTO vocabulary (id, word, translation, example, level, category, source, date, added_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Word, v.Translation, v.Example, string(v.Level),
		v.Category, v.Source, v.Date, v.AddedAt.Unix(),
	)
	return err
}

// CountVocabularyForDay returns how many words were added on a day.
func (d *DB) CountVocabularyForDay(date string) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM vocabulary WHERE date = ?`, date).Scan(&count)
	return count, err
}

// ListVocabulary returns the vocabulary bank, newest first.
func (d *DB) ListVocabulary(limit int) ([]domain.VocabularyEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, word, translation, example, level, category, source, date, added_at
		 FROM vocabulary ORDER BY added_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.VocabularyEntry
	for rows.Next() {
		var v domain.VocabularyEntry
		var level string
		var addedAt int64
		if err := rows.Scan(&v.ID, &v.Word, &v.Translation, &v.Example,
			&level, &v.Category, &v.Source, &v.Date, &addedAt); err != nil {
			return nil, err
		}
		v.Level = domain.CEFRLevel(level)
		v.AddedAt = time.Unix(addedAt, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification creates a new notification.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO notifications (type, title, body, created_at, shown)
		 VALUES (?, ?, ?, ?, ?)`,
		string(n.Type), n.Title, n.Body, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// NotificationCountSince counts notifications created at or after a time.
func (d *DB) NotificationCountSince(since time.Time) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE created_at >= ?`, since.Unix(),
	).Scan(&count)
	return count, err
}

// ListPendingNotifications returns unshown notifications.
func (d *DB) ListPendingNotifications(limit int) ([]domain.Notification, error) {
	rows, err := d.db.Query(
		`SELECT id, type, title, body, created_at, shown
		 FROM notifications WHERE shown = 0 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &createdAt, &n.Shown); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0).UTC()
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown marks a notification as shown.
func (d *DB) MarkNotificationShown(id int64) error {
	_, err := d.db.Exec(`UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	return err
}

// ─── Settings Key-Value ─────────────────────────────────────────────────────

// SetSetting stores a settings key-value pair.
func (d *DB) SetSetting(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetSetting retrieves a settings value by key. Returns "" if not found.
func (d *DB) GetSetting(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
