package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"learntube/model"
)

var ErrNotFound = errors.New("not found")

type PostgresPlaylistRepository struct {
	db *Postgres
}

func NewPostgresPlaylistRepository(db *Postgres) *PostgresPlaylistRepository {
	return &PostgresPlaylistRepository{db: db}
}

func (r *PostgresPlaylistRepository) Save(playlist *model.Playlist) error {
	tx, err := r.db.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
INSERT INTO playlist
(id, user_id, title, description, query, language, difficulty, total_videos, completed_videos, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		playlist.ID, playlist.UserID, playlist.Title, playlist.Description, playlist.Query,
		playlist.Language, playlist.Difficulty, playlist.TotalVideos, playlist.CompletedVideos,
		playlist.CreatedAt); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}

	for _, video := range playlist.Videos {
		if _, err := tx.Exec(`
INSERT INTO playlist_video
(playlist_id, youtube_id, title, description, channel_title, thumbnail_url, published_at, duration, difficulty, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			playlist.ID, string(video.YoutubeID), video.Title, video.Description, video.ChannelTitle,
			video.ThumbnailURL, video.PublishedAt, video.Duration, string(video.Difficulty),
			video.Order); err != nil {
			return fmt.Errorf("failed to save playlist video: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}

	return nil
}

func (r *PostgresPlaylistRepository) Find(id uuid.UUID) (*model.Playlist, error) {
	playlist := &model.Playlist{ID: id}
	err := r.db.db.QueryRow(`
SELECT user_id, title, description, query, language, difficulty, total_videos, completed_videos, created_at
FROM playlist
WHERE id = $1`, id).Scan(&playlist.UserID, &playlist.Title, &playlist.Description, &playlist.Query,
		&playlist.Language, &playlist.Difficulty, &playlist.TotalVideos, &playlist.CompletedVideos,
		&playlist.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to find playlist: %w", err)
	}

	rows, err := r.db.db.Query(`
SELECT youtube_id, title, description, channel_title, thumbnail_url, published_at, duration, difficulty, position
FROM playlist_video
WHERE playlist_id = $1
ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find playlist videos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		video := &model.Video{}
		if err := rows.Scan(&video.YoutubeID, &video.Title, &video.Description, &video.ChannelTitle,
			&video.ThumbnailURL, &video.PublishedAt, &video.Duration, &video.Difficulty,
			&video.Order); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video: %w", err)
		}
		playlist.Videos = append(playlist.Videos, video)
	}

	return playlist, nil
}

func (r *PostgresPlaylistRepository) FindByUser(userID string) ([]*model.Playlist, error) {
	rows, err := r.db.db.Query(`
SELECT id, user_id, title, description, query, language, difficulty, total_videos, completed_videos, created_at
FROM playlist
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find playlists: %w", err)
	}
	defer rows.Close()

	playlists := []*model.Playlist{}
	for rows.Next() {
		playlist := &model.Playlist{}
		if err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Title, &playlist.Description,
			&playlist.Query, &playlist.Language, &playlist.Difficulty, &playlist.TotalVideos,
			&playlist.CompletedVideos, &playlist.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}

	return playlists, nil
}

func (r *PostgresPlaylistRepository) Delete(id uuid.UUID) error {
	result, err := r.db.db.Exec(`DELETE FROM playlist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if count, err := result.RowsAffected(); err == nil && count == 0 {
		return ErrNotFound
	}

	return nil
}
