package storage

import (
	"fmt"

	"learntube/model"
)

type PostgresSearchRepository struct {
	db *Postgres
}

func NewPostgresSearchRepository(db *Postgres) *PostgresSearchRepository {
	return &PostgresSearchRepository{db: db}
}

func (r *PostgresSearchRepository) Record(search *model.Search) error {
	if _, err := r.db.db.Exec(`
INSERT INTO search_history
(id, user_id, query, language, difficulty, results_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		search.ID, search.UserID, search.Query, search.Language, search.Difficulty,
		search.ResultsCount, search.CreatedAt); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}
