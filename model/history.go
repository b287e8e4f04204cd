package model

import (
	"time"

	"github.com/google/uuid"
)

type HistoryEntry struct {
	ID           uuid.UUID      `json:"id"`
	UserID       string         `json:"userId"`
	YoutubeID    YoutubeVideoID `json:"videoId"`
	Title        string         `json:"title"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Duration     string         `json:"duration"`
	WatchTime    int            `json:"watchTime"`
	Completed    bool           `json:"completed"`
	ViewedAt     time.Time      `json:"viewedAt"`
}
