package model

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"userId,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Query           string    `json:"query"`
	Language        string    `json:"language"`
	Difficulty      string    `json:"difficulty"`
	TotalVideos     int       `json:"totalVideos"`
	CompletedVideos int       `json:"completedVideos"`
	Videos          []*Video  `json:"videos"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Search records one executed playlist search for a user's history.
type Search struct {
	ID           uuid.UUID
	UserID       string
	Query        string
	Language     string
	Difficulty   string
	ResultsCount int
	CreatedAt    time.Time
}
