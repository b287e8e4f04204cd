package curator

import (
	"context"

	"learntube/model"
)

type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int64) ([]*model.Video, error)
}

type DifficultyClassifier interface {
	ClassifyDifficulty(ctx context.Context, title, description string) (model.Difficulty, error)
}
