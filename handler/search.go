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

	"learntube/curator"
	"learntube/model"
	"learntube/storage"
)

type Curator interface {
	Curate(ctx context.Context, req curator.SearchRequest) (*model.Playlist, error)
}

type SearchAPI struct {
	curator      Curator
	playlistRepo storage.PlaylistRepository
	searchRepo   storage.SearchRepository
	logger       *slog.Logger
}

func NewSearchAPI(c Curator, playlistRepo storage.PlaylistRepository, searchRepo storage.SearchRepository, logger *slog.Logger) *SearchAPI {
	return &SearchAPI{
		curator:      c,
		playlistRepo: playlistRepo,
		searchRepo:   searchRepo,
		logger:       logger,
	}
}

func (s *SearchAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && head == "":
		s.Search(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the search api", r.Method, head))
	}
}

func (s *SearchAPI) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query      string `json:"query"`
		Language   string `json:"language"`
		Difficulty string `json:"difficulty"`
		User       string `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not parse request body", err)
		return
	}
	if req.Query == "" {
		Error(w, http.StatusBadRequest, "query is required", errors.New("empty query"))
		return
	}

	playlist, err := s.curator.Curate(r.Context(), curator.SearchRequest{
		Query:      req.Query,
		Language:   req.Language,
		Difficulty: req.Difficulty,
	})
	switch {
	case errors.Is(err, curator.ErrNoVideos):
		s.record(req.User, req.Query, req.Language, req.Difficulty, 0)
		s.respond(w, nil, "No videos found for this query. Please try a different search term.")
		return
	case err != nil:
		s.logger.Error("curation failed", slog.String("query", req.Query), slog.String("error", err.Error()))
		Error(w, http.StatusInternalServerError, "failed to search videos", err)
		return
	}

	playlist.UserID = req.User
	if err := s.playlistRepo.Save(playlist); err != nil {
		// the curated playlist is still worth returning
		s.logger.Error("failed to save playlist", slog.String("id", playlist.ID.String()), slog.String("error", err.Error()))
	}
	s.record(req.User, req.Query, req.Language, req.Difficulty, playlist.TotalVideos)

	s.respond(w, playlist, fmt.Sprintf("Found %d videos for %q", playlist.TotalVideos, req.Query))
}

func (s *SearchAPI) record(userID, query, language, difficulty string, results int) {
	if language == "" {
		language = "en"
	}
	search := &model.Search{
		ID:           uuid.New(),
		UserID:       userID,
		Query:        query,
		Language:     language,
		Difficulty:   difficulty,
		ResultsCount: results,
		CreatedAt:    time.Now(),
	}
	if err := s.searchRepo.Record(search); err != nil {
		s.logger.Error("failed to record search", slog.String("query", query), slog.String("error", err.Error()))
	}
}

func (s *SearchAPI) respond(w http.ResponseWriter, playlist *model.Playlist, message string) {
	resp := struct {
		Playlist *model.Playlist `json:"playlist"`
		Message  string          `json:"message"`
	}{
		Playlist: playlist,
		Message:  message,
	}
	jsonBody, err := json.Marshal(resp)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}
