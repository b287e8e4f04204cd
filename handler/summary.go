package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"learntube/model"
)

// summaryFallback is returned when the generative call fails, the endpoint
// itself never errors on upstream trouble.
const summaryFallback = "Summary unavailable. Please watch the video for full content."

type SummaryGenerator interface {
	FetchSummary(ctx context.Context, title, description string) (string, error)
	GenerateQuiz(ctx context.Context, title, description string) ([]model.QuizQuestion, error)
}

type SummaryAPI struct {
	generator SummaryGenerator
	logger    *slog.Logger
}

func NewSummaryAPI(generator SummaryGenerator, logger *slog.Logger) *SummaryAPI {
	return &SummaryAPI{
		generator: generator,
		logger:    logger,
	}
}

func (s *SummaryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && head == "":
		s.Summarize(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the summary api", r.Method, head))
	}
}

func (s *SummaryAPI) Summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not parse request body", err)
		return
	}
	if req.Title == "" {
		Error(w, http.StatusBadRequest, "title is required", errors.New("empty title"))
		return
	}

	summary, err := s.generator.FetchSummary(r.Context(), req.Title, req.Description)
	if err != nil {
		s.logger.Error("failed to fetch summary", slog.String("title", req.Title), slog.String("error", err.Error()))
		summary = summaryFallback
	}
	quiz, err := s.generator.GenerateQuiz(r.Context(), req.Title, req.Description)
	if err != nil {
		s.logger.Error("failed to generate quiz", slog.String("title", req.Title), slog.String("error", err.Error()))
		quiz = []model.QuizQuestion{}
	}

	resp := struct {
		Summary string               `json:"summary"`
		Quiz    []model.QuizQuestion `json:"quiz"`
	}{
		Summary: summary,
		Quiz:    quiz,
	}
	jsonBody, err := json.Marshal(resp)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}
