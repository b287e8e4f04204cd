package handler

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"learntube/curator"
	"learntube/model"
)

var errTest = errors.New("test error")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

type fakeCurator struct {
	playlist *model.Playlist
	err      error
}

func (f *fakeCurator) Curate(_ context.Context, _ curator.SearchRequest) (*model.Playlist, error) {
	return f.playlist, f.err
}

type fakePlaylistRepo struct {
	saved     []*model.Playlist
	playlists map[uuid.UUID]*model.Playlist
	err       error
}

func (f *fakePlaylistRepo) Save(playlist *model.Playlist) error {
	f.saved = append(f.saved, playlist)
	return f.err
}

func (f *fakePlaylistRepo) Find(id uuid.UUID) (*model.Playlist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.playlists[id], nil
}

func (f *fakePlaylistRepo) FindByUser(_ string) ([]*model.Playlist, error) {
	return f.saved, f.err
}

func (f *fakePlaylistRepo) Delete(_ uuid.UUID) error {
	return f.err
}

type fakeSearchRepo struct {
	recorded []*model.Search
	err      error
}

func (f *fakeSearchRepo) Record(search *model.Search) error {
	f.recorded = append(f.recorded, search)
	return f.err
}

type fakeHistoryRepo struct {
	recorded []*model.HistoryEntry
	err      error
}

func (f *fakeHistoryRepo) Record(entry *model.HistoryEntry) error {
	f.recorded = append(f.recorded, entry)
	return f.err
}

func (f *fakeHistoryRepo) FindRecent(_ string, limit int) ([]*model.HistoryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recorded) > limit {
		return f.recorded[:limit], nil
	}
	return f.recorded, nil
}

func (f *fakeHistoryRepo) CountByUser(_ string) (int, error) {
	return len(f.recorded), f.err
}

func (f *fakeHistoryRepo) CountCompleted(_ string) (int, error) {
	count := 0
	for _, entry := range f.recorded {
		if entry.Completed {
			count++
		}
	}
	return count, f.err
}
