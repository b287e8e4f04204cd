package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Interview struct {
	ID             uuid.UUID           `json:"id"`
	UserID         string              `json:"userId"`
	JobPosition    string              `json:"jobPosition"`
	JobDescription string              `json:"jobDescription"`
	JobExperience  string              `json:"jobExperience"`
	Questions      []InterviewQuestion `json:"questions"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type InterviewAnswer struct {
	ID            uuid.UUID `json:"id"`
	InterviewID   uuid.UUID `json:"interviewId"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correctAnswer"`
	UserAnswer    string    `json:"userAnswer"`
	Feedback      string    `json:"feedback"`
	Rating        string    `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}
