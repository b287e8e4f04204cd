package storage

import (
	"fmt"

	"learntube/model"
)

// historyLimit caps the number of history entries kept per user. Recording a
// new view evicts the oldest entry beyond the cap.
const historyLimit = 10

type PostgresHistoryRepository struct {
	db *Postgres
}

func NewPostgresHistoryRepository(db *Postgres) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Record(entry *model.HistoryEntry) error {
	tx, err := r.db.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
INSERT INTO history
(id, user_id, youtube_id, title, thumbnail_url, duration, watch_time, completed, viewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, youtube_id) DO UPDATE
SET watch_time = EXCLUDED.watch_time,
    completed = history.completed OR EXCLUDED.completed,
    viewed_at = EXCLUDED.viewed_at`,
		entry.ID, entry.UserID, string(entry.YoutubeID), entry.Title, entry.ThumbnailURL,
		entry.Duration, entry.WatchTime, entry.Completed, entry.ViewedAt); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	if _, err := tx.Exec(`
DELETE FROM history
WHERE user_id = $1 AND id NOT IN (
    SELECT id FROM history WHERE user_id = $1 ORDER BY viewed_at DESC LIMIT $2
)`, entry.UserID, historyLimit); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	return nil
}

func (r *PostgresHistoryRepository) FindRecent(userID string, limit int) ([]*model.HistoryEntry, error) {
	rows, err := r.db.db.Query(`
SELECT id, user_id, youtube_id, title, thumbnail_url, duration, watch_time, completed, viewed_at
FROM history
WHERE user_id = $1
ORDER BY viewed_at DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find history: %w", err)
	}
	defer rows.Close()

	entries := []*model.HistoryEntry{}
	for rows.Next() {
		entry := &model.HistoryEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.YoutubeID, &entry.Title,
			&entry.ThumbnailURL, &entry.Duration, &entry.WatchTime, &entry.Completed,
			&entry.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *PostgresHistoryRepository) CountByUser(userID string) (int, error) {
	var count int
	if err := r.db.db.QueryRow(`SELECT COUNT(*) FROM history WHERE user_id = $1`, userID).
		Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}

	return count, nil
}

func (r *PostgresHistoryRepository) CountCompleted(userID string) (int, error) {
	var count int
	if err := r.db.db.QueryRow(`SELECT COUNT(*) FROM history WHERE user_id = $1 AND completed`, userID).
		Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed history: %w", err)
	}

	return count, nil
}
