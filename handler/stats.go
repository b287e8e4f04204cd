package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"learntube/model"
	"learntube/storage"
)

type StatsAPI struct {
	historyRepo  storage.HistoryRepository
	playlistRepo storage.PlaylistRepository
	logger       *slog.Logger
}

func NewStatsAPI(historyRepo storage.HistoryRepository, playlistRepo storage.PlaylistRepository, logger *slog.Logger) *StatsAPI {
	return &StatsAPI{
		historyRepo:  historyRepo,
		playlistRepo: playlistRepo,
		logger:       logger,
	}
}

func (s *StatsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && head == "":
		s.Stats(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the stats api", r.Method, head))
	}
}

func (s *StatsAPI) Stats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")

	totalWatched, err := s.historyRepo.CountByUser(userID)
	if err != nil {
		s.returnErr(w, "could not count history", err)
		return
	}
	completed, err := s.historyRepo.CountCompleted(userID)
	if err != nil {
		s.returnErr(w, "could not count completed videos", err)
		return
	}
	recent, err := s.historyRepo.FindRecent(userID, 5)
	if err != nil {
		s.returnErr(w, "could not fetch recent history", err)
		return
	}
	playlists, err := s.playlistRepo.FindByUser(userID)
	if err != nil {
		s.returnErr(w, "could not fetch playlists", err)
		return
	}

	completionRate := 0
	if totalWatched > 0 {
		completionRate = completed * 100 / totalWatched
	}

	resp := struct {
		Stats struct {
			TotalPlaylists  int                   `json:"totalPlaylists"`
			TotalWatched    int                   `json:"totalWatched"`
			CompletedVideos int                   `json:"completedVideos"`
			CompletionRate  int                   `json:"completionRate"`
			RecentHistory   []*model.HistoryEntry `json:"recentHistory"`
		} `json:"stats"`
	}{}
	resp.Stats.TotalPlaylists = len(playlists)
	resp.Stats.TotalWatched = totalWatched
	resp.Stats.CompletedVideos = completed
	resp.Stats.CompletionRate = completionRate
	resp.Stats.RecentHistory = recent

	jsonBody, err := json.Marshal(resp)
	if err != nil {
		s.returnErr(w, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (s *StatsAPI) returnErr(w http.ResponseWriter, message string, err error) {
	s.logger.Error(message, slog.String("error", err.Error()))
	Error(w, http.StatusInternalServerError, message, err)
}
