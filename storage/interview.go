package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"learntube/model"
)

type PostgresInterviewRepository struct {
	db *Postgres
}

func NewPostgresInterviewRepository(db *Postgres) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

func (r *PostgresInterviewRepository) Save(interview *model.Interview) error {
	questions, err := json.Marshal(interview.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode interview questions: %w", err)
	}

	if _, err := r.db.db.Exec(`
INSERT INTO interview
(id, user_id, job_position, job_description, job_experience, questions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		interview.ID, interview.UserID, interview.JobPosition, interview.JobDescription,
		interview.JobExperience, string(questions), interview.CreatedAt); err != nil {
		return fmt.Errorf("failed to save interview: %w", err)
	}

	return nil
}

func (r *PostgresInterviewRepository) Find(id uuid.UUID) (*model.Interview, error) {
	interview := &model.Interview{ID: id}
	var questions string
	err := r.db.db.QueryRow(`
SELECT user_id, job_position, job_description, job_experience, questions, created_at
FROM interview
WHERE id = $1`, id).Scan(&interview.UserID, &interview.JobPosition, &interview.JobDescription,
		&interview.JobExperience, &questions, &interview.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}

	if err := json.Unmarshal([]byte(questions), &interview.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode interview questions: %w", err)
	}

	return interview, nil
}

func (r *PostgresInterviewRepository) FindByUser(userID string) ([]*model.Interview, error) {
	rows, err := r.db.db.Query(`
SELECT id, user_id, job_position, job_description, job_experience, questions, created_at
FROM interview
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find interviews: %w", err)
	}
	defer rows.Close()

	interviews := []*model.Interview{}
	for rows.Next() {
		interview := &model.Interview{}
		var questions string
		if err := rows.Scan(&interview.ID, &interview.UserID, &interview.JobPosition,
			&interview.JobDescription, &interview.JobExperience, &questions,
			&interview.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		if err := json.Unmarshal([]byte(questions), &interview.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode interview questions: %w", err)
		}
		interviews = append(interviews, interview)
	}

	return interviews, nil
}

func (r *PostgresInterviewRepository) SaveAnswer(answer *model.InterviewAnswer) error {
	if _, err := r.db.db.Exec(`
INSERT INTO interview_answer
(id, interview_id, question, correct_answer, user_answer, feedback, rating, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		answer.ID, answer.InterviewID, answer.Question, answer.CorrectAnswer, answer.UserAnswer,
		answer.Feedback, answer.Rating, answer.CreatedAt); err != nil {
		return fmt.Errorf("failed to save interview answer: %w", err)
	}

	return nil
}

func (r *PostgresInterviewRepository) FindAnswers(interviewID uuid.UUID) ([]*model.InterviewAnswer, error) {
	rows, err := r.db.db.Query(`
SELECT id, interview_id, question, correct_answer, user_answer, feedback, rating, created_at
FROM interview_answer
WHERE interview_id = $1
ORDER BY created_at`, interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to find interview answers: %w", err)
	}
	defer rows.Close()

	answers := []*model.InterviewAnswer{}
	for rows.Next() {
		answer := &model.InterviewAnswer{}
		if err := rows.Scan(&answer.ID, &answer.InterviewID, &answer.Question, &answer.CorrectAnswer,
			&answer.UserAnswer, &answer.Feedback, &answer.Rating, &answer.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview answer: %w", err)
		}
		answers = append(answers, answer)
	}

	return answers, nil
}
