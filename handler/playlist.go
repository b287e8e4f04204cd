package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"learntube/storage"
)

type PlaylistAPI struct {
	playlistRepo storage.PlaylistRepository
	logger       *slog.Logger
}

func NewPlaylistAPI(playlistRepo storage.PlaylistRepository, logger *slog.Logger) *PlaylistAPI {
	return &PlaylistAPI{
		playlistRepo: playlistRepo,
		logger:       logger,
	}
}

func (p *PlaylistAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	playlistID, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && playlistID == "":
		p.List(w, r)
	case r.Method == http.MethodGet:
		p.Get(w, r, playlistID)
	case r.Method == http.MethodDelete && playlistID != "":
		p.Delete(w, r, playlistID)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the playlist api", r.Method, playlistID))
	}
}

func (p *PlaylistAPI) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	playlists, err := p.playlistRepo.FindByUser(userID)
	if err != nil {
		p.returnErr(w, http.StatusInternalServerError, "could not list playlists", err)
		return
	}

	jsonBody, err := json.Marshal(playlists)
	if err != nil {
		p.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (p *PlaylistAPI) Get(w http.ResponseWriter, _ *http.Request, playlistID string) {
	id, err := uuid.Parse(playlistID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid playlist id", err)
		return
	}

	playlist, err := p.playlistRepo.Find(id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "playlist not found", err)
		return
	case err != nil:
		p.returnErr(w, http.StatusInternalServerError, "could not fetch playlist", err)
		return
	}

	jsonBody, err := json.Marshal(playlist)
	if err != nil {
		p.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

func (p *PlaylistAPI) Delete(w http.ResponseWriter, _ *http.Request, playlistID string) {
	id, err := uuid.Parse(playlistID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid playlist id", err)
		return
	}

	err = p.playlistRepo.Delete(id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "playlist not found", err)
		return
	case err != nil:
		p.returnErr(w, http.StatusInternalServerError, "could not delete playlist", err)
		return
	}

	Message(w, http.StatusOK, "playlist deleted")
}

func (p *PlaylistAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	p.logger.Error(message, slog.String("error", err.Error()))
	Error(w, status, message, err)
}
