package storage

import (
	"github.com/google/uuid"

	"learntube/model"
)

type PlaylistRepository interface {
	Save(playlist *model.Playlist) error
	Find(id uuid.UUID) (*model.Playlist, error)
	FindByUser(userID string) ([]*model.Playlist, error)
	Delete(id uuid.UUID) error
}

type HistoryRepository interface {
	Record(entry *model.HistoryEntry) error
	FindRecent(userID string, limit int) ([]*model.HistoryEntry, error)
	CountByUser(userID string) (int, error)
	CountCompleted(userID string) (int, error)
}

type SearchRepository interface {
	Record(search *model.Search) error
}

type InterviewRepository interface {
	Save(interview *model.Interview) error
	Find(id uuid.UUID) (*model.Interview, error)
	FindByUser(userID string) ([]*model.Interview, error)
	SaveAnswer(answer *model.InterviewAnswer) error
	FindAnswers(interviewID uuid.UUID) ([]*model.InterviewAnswer, error)
}
