package handler

import (
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

const recentHistorySize = 10

type HistoryAPI struct {
	historyRepo storage.HistoryRepository
	logger      *slog.Logger
}

func NewHistoryAPI(historyRepo storage.HistoryRepository, logger *slog.Logger) *HistoryAPI {
	return &HistoryAPI{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (h *HistoryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && head == "":
		h.List(w, r)
	case r.Method == http.MethodPost && head == "":
		h.Record(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the history api", r.Method, head))
	}
}

func (h *HistoryAPI) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	entries, err := h.historyRepo.FindRecent(userID, recentHistorySize)
	if err != nil {
		h.returnErr(w, http.StatusInternalServerError, "could not list history", err)
		return
	}
	total, err := h.historyRepo.CountByUser(userID)
	if err != nil {
		h.returnErr(w, http.StatusInternalServerError, "could not count history", err)
		return
	}

	resp := struct {
		History         []*model.HistoryEntry `json:"history"`
		TotalVideoCount int                   `json:"totalVideoCount"`
	}{
		History:         entries,
		TotalVideoCount: total,
	}
	jsonBody, err := json.Marshal(resp)
	if err != nil {
		h.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (h *HistoryAPI) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User         string `json:"user"`
		VideoID      string `json:"videoId"`
		Title        string `json:"title"`
		ThumbnailURL string `json:"thumbnailUrl"`
		Duration     string `json:"duration"`
		WatchTime    int    `json:"watchTime"`
		Completed    bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not parse request body", err)
		return
	}
	if req.VideoID == "" {
		Error(w, http.StatusBadRequest, "video id is required", errors.New("empty video id"))
		return
	}

	entry := &model.HistoryEntry{
		ID:           uuid.New(),
		UserID:       req.User,
		YoutubeID:    model.YoutubeVideoID(req.VideoID),
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		WatchTime:    req.WatchTime,
		Completed:    req.Completed,
		ViewedAt:     time.Now(),
	}
	if err := h.historyRepo.Record(entry); err != nil {
		h.returnErr(w, http.StatusInternalServerError, "could not record history", err)
		return
	}

	jsonBody, err := json.Marshal(entry)
	if err != nil {
		h.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (h *HistoryAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	h.logger.Error(message, slog.String("error", err.Error()))
	Error(w, status, message, err)
}
