package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"learntube/model"
	"learntube/storage"
)

const interviewQuestionCount = 5

type InterviewGenerator interface {
	GenerateInterview(ctx context.Context, position, description, experience string, count int) ([]model.InterviewQuestion, error)
	InterviewFeedback(ctx context.Context, question, userAnswer string) (feedback, rating string, err error)
}

type InterviewAPI struct {
	generator     InterviewGenerator
	interviewRepo storage.InterviewRepository
	logger        *slog.Logger
}

func NewInterviewAPI(generator InterviewGenerator, interviewRepo storage.InterviewRepository, logger *slog.Logger) *InterviewAPI {
	return &InterviewAPI{
		generator:     generator,
		interviewRepo: interviewRepo,
		logger:        logger,
	}
}

func (i *InterviewAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	interviewID, tail := ShiftPath(r.URL.Path)
	action, _ := ShiftPath(tail)

	switch {
	case r.Method == http.MethodPost && interviewID == "":
		i.Create(w, r)
	case r.Method == http.MethodGet && interviewID == "":
		i.List(w, r)
	case r.Method == http.MethodGet && action == "":
		i.Get(w, r, interviewID)
	case r.Method == http.MethodPost && action == "answer":
		i.Answer(w, r, interviewID)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the interview api", r.Method, r.URL.Path))
	}
}

func (i *InterviewAPI) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User           string `json:"user"`
		JobPosition    string `json:"jobPosition"`
		JobDescription string `json:"jobDescription"`
		JobExperience  string `json:"jobExperience"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not parse request body", err)
		return
	}
	if req.JobPosition == "" {
		Error(w, http.StatusBadRequest, "job position is required", errors.New("empty job position"))
		return
	}

	questions, err := i.generator.GenerateInterview(r.Context(), req.JobPosition, req.JobDescription,
		req.JobExperience, interviewQuestionCount)
	if err != nil {
		i.returnErr(w, "could not generate interview questions", err)
		return
	}

	interview := &model.Interview{
		ID:             uuid.New(),
		UserID:         req.User,
		JobPosition:    req.JobPosition,
		JobDescription: req.JobDescription,
		JobExperience:  req.JobExperience,
		Questions:      questions,
		CreatedAt:      time.Now(),
	}
	if err := i.interviewRepo.Save(interview); err != nil {
		i.returnErr(w, "could not save interview", err)
		return
	}

	i.respond(w, interview)
}

func (i *InterviewAPI) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	interviews, err := i.interviewRepo.FindByUser(userID)
	if err != nil {
		i.returnErr(w, "could not list interviews", err)
		return
	}

	i.respond(w, interviews)
}

func (i *InterviewAPI) Get(w http.ResponseWriter, _ *http.Request, interviewID string) {
	id, err := uuid.Parse(interviewID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid interview id", err)
		return
	}

	interview, err := i.interviewRepo.Find(id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "interview not found", err)
		return
	case err != nil:
		i.returnErr(w, "could not fetch interview", err)
		return
	}

	answers, err := i.interviewRepo.FindAnswers(id)
	if err != nil {
		i.returnErr(w, "could not fetch interview answers", err)
		return
	}

	resp := struct {
		Interview *model.Interview         `json:"interview"`
		Answers   []*model.InterviewAnswer `json:"answers"`
	}{
		Interview: interview,
		Answers:   answers,
	}
	i.respond(w, resp)
}

func (i *InterviewAPI) Answer(w http.ResponseWriter, r *http.Request, interviewID string) {
	id, err := uuid.Parse(interviewID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid interview id", err)
		return
	}

	var req struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correctAnswer"`
		UserAnswer    string `json:"userAnswer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not parse request body", err)
		return
	}
	if req.Question == "" || req.UserAnswer == "" {
		Error(w, http.StatusBadRequest, "question and user answer are required", errors.New("missing question or answer"))
		return
	}

	if _, err := i.interviewRepo.Find(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Error(w, http.StatusNotFound, "interview not found", err)
			return
		}
		i.returnErr(w, "could not fetch interview", err)
		return
	}

	feedback, rating, err := i.generator.InterviewFeedback(r.Context(), req.Question, req.UserAnswer)
	if err != nil {
		i.returnErr(w, "could not generate feedback", err)
		return
	}

	answer := &model.InterviewAnswer{
		ID:            uuid.New(),
		InterviewID:   id,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		UserAnswer:    req.UserAnswer,
		Feedback:      feedback,
		Rating:        rating,
		CreatedAt:     time.Now(),
	}
	if err := i.interviewRepo.SaveAnswer(answer); err != nil {
		i.returnErr(w, "could not save answer", err)
		return
	}

	i.respond(w, answer)
}

func (i *InterviewAPI) respond(w http.ResponseWriter, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (i *InterviewAPI) returnErr(w http.ResponseWriter, message string, err error) {
	i.logger.Error(message, slog.String("error", err.Error()))
	Error(w, http.StatusInternalServerError, message, err)
}
