package curator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"golang.org/x/exp/slog"

	"learntube/model"
)

type searcherFunc func(ctx context.Context, query string, maxResults int64) ([]*model.Video, error)

func (f searcherFunc) Search(ctx context.Context, query string, maxResults int64) ([]*model.Video, error) {
	return f(ctx, query, maxResults)
}

type classifierFunc func(ctx context.Context, title, description string) (model.Difficulty, error)

func (f classifierFunc) ClassifyDifficulty(ctx context.Context, title, description string) (model.Difficulty, error) {
	return f(ctx, title, description)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func video(id string) *model.Video {
	return &model.Video{
		YoutubeID:       model.YoutubeVideoID(id),
		Title:           "title " + id,
		Description:     "description " + id,
		YoutubeDuration: "PT5M9S",
	}
}

func beginnerClassifier() classifierFunc {
	return func(_ context.Context, _, _ string) (model.Difficulty, error) {
		return model.DifficultyBeginner, nil
	}
}

func TestCurateEmptyQuery(t *testing.T) {
	t.Parallel()

	c := NewCurator(searcherFunc(func(_ context.Context, _ string, _ int64) ([]*model.Video, error) {
		t.Fatal("searcher must not be called for an empty query")
		return nil, nil
	}), beginnerClassifier(), testLogger())

	if _, err := c.Curate(context.Background(), SearchRequest{}); err == nil {
		t.Fatal("expected an error for an empty query")
	}
}

func TestCurateNoVideos(t *testing.T) {
	t.Parallel()

	c := NewCurator(searcherFunc(func(_ context.Context, _ string, _ int64) ([]*model.Video, error) {
		return []*model.Video{}, nil
	}), beginnerClassifier(), testLogger())

	_, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if !errors.Is(err, ErrNoVideos) {
		t.Fatalf("expected ErrNoVideos, got %v", err)
	}
}

func TestCurateSearchFailureIsolation(t *testing.T) {
	t.Parallel()

	calls := 0
	c := NewCurator(searcherFunc(func(_ context.Context, _ string, _ int64) ([]*model.Video, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("quota exceeded")
		}
		return []*model.Video{video(fmt.Sprintf("vid-%d", calls))}, nil
	}), beginnerClassifier(), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 search calls, got %d", calls)
	}
	if playlist.TotalVideos != 2 {
		t.Errorf("expected 2 videos, got %d", playlist.TotalVideos)
	}
}

func TestCurateDedup(t *testing.T) {
	t.Parallel()

	// every query returns the same overlapping set
	c := NewCurator(searcherFunc(func(_ context.Context, _ string, _ int64) ([]*model.Video, error) {
		return []*model.Video{video("a"), video("b"), video("c")}, nil
	}), beginnerClassifier(), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if playlist.TotalVideos != 3 {
		t.Fatalf("expected 3 unique videos, got %d", playlist.TotalVideos)
	}
	seen := map[model.YoutubeVideoID]bool{}
	for _, v := range playlist.Videos {
		if seen[v.YoutubeID] {
			t.Errorf("duplicate video id %s", v.YoutubeID)
		}
		seen[v.YoutubeID] = true
	}
}

func TestCurateCap(t *testing.T) {
	t.Parallel()

	calls := 0
	c := NewCurator(searcherFunc(func(_ context.Context, _ string, maxResults int64) ([]*model.Video, error) {
		calls++
		videos := make([]*model.Video, 0, maxResults)
		for i := int64(0); i < maxResults; i++ {
			videos = append(videos, video(fmt.Sprintf("q%d-v%d", calls, i)))
		}
		return videos, nil
	}), beginnerClassifier(), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if playlist.TotalVideos != playlistLimit {
		t.Errorf("expected the playlist to be capped at %d, got %d", playlistLimit, playlist.TotalVideos)
	}
	if len(playlist.Videos) != playlistLimit {
		t.Errorf("expected %d videos, got %d", playlistLimit, len(playlist.Videos))
	}
}

func TestCurateClassifierFailure(t *testing.T) {
	t.Parallel()

	c := NewCurator(searcherFunc(func(_ context.Context, query string, _ int64) ([]*model.Video, error) {
		return []*model.Video{video("a-" + query), video("b-" + query)}, nil
	}), classifierFunc(func(_ context.Context, _, _ string) (model.Difficulty, error) {
		return "", errors.New("provider unreachable")
	}), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if err != nil {
		t.Fatalf("expected a valid playlist despite classifier failures, got %v", err)
	}
	for _, v := range playlist.Videos {
		if v.Difficulty != model.DifficultyBeginner {
			t.Errorf("video %s: expected beginner fallback, got %q", v.YoutubeID, v.Difficulty)
		}
	}
}

func TestCurateOrdering(t *testing.T) {
	t.Parallel()

	difficulties := map[string]model.Difficulty{
		"title adv-1": model.DifficultyAdvanced,
		"title beg-1": model.DifficultyBeginner,
		"title int-1": model.DifficultyIntermediate,
		"title beg-2": model.DifficultyBeginner,
		"title int-2": model.DifficultyIntermediate,
		"title weird": "expert", // unrecognized, ranks with beginner
	}

	calls := 0
	c := NewCurator(searcherFunc(func(_ context.Context, _ string, _ int64) ([]*model.Video, error) {
		calls++
		if calls > 1 {
			return []*model.Video{}, nil
		}
		return []*model.Video{
			video("adv-1"), video("beg-1"), video("int-1"),
			video("beg-2"), video("int-2"), video("weird"),
		}, nil
	}), classifierFunc(func(_ context.Context, title, _ string) (model.Difficulty, error) {
		return difficulties[title], nil
	}), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prevRank := 0
	for i, v := range playlist.Videos {
		if v.Order != i+1 {
			t.Errorf("video %s: expected order %d, got %d", v.YoutubeID, i+1, v.Order)
		}
		if v.Difficulty.Rank() < prevRank {
			t.Errorf("video %s: rank %d after rank %d", v.YoutubeID, v.Difficulty.Rank(), prevRank)
		}
		prevRank = v.Difficulty.Rank()
	}

	// the sort is stable: equal-rank videos keep their merge order
	wantOrder := []model.YoutubeVideoID{"beg-1", "beg-2", "weird", "int-1", "int-2", "adv-1"}
	for i, v := range playlist.Videos {
		if v.YoutubeID != wantOrder[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantOrder[i], v.YoutubeID)
		}
	}
}

func TestCurateAssembly(t *testing.T) {
	t.Parallel()

	c := NewCurator(searcherFunc(func(_ context.Context, query string, _ int64) ([]*model.Video, error) {
		return []*model.Video{video("a-" + query)}, nil
	}), beginnerClassifier(), testLogger())

	playlist, err := c.Curate(context.Background(), SearchRequest{Query: "React hooks", Difficulty: "advanced"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if playlist.Title != "React hooks - Complete Learning Path" {
		t.Errorf("unexpected title: %q", playlist.Title)
	}
	wantDescription := fmt.Sprintf("AI-curated learning playlist for React hooks with %d videos", playlist.TotalVideos)
	if playlist.Description != wantDescription {
		t.Errorf("unexpected description: %q", playlist.Description)
	}
	if playlist.Language != "en" {
		t.Errorf("expected default language en, got %q", playlist.Language)
	}
	if playlist.CompletedVideos != 0 {
		t.Errorf("expected 0 completed videos, got %d", playlist.CompletedVideos)
	}
	// the requested difficulty is stored but does not filter the result
	if playlist.Difficulty != "advanced" {
		t.Errorf("expected stored difficulty advanced, got %q", playlist.Difficulty)
	}
	if playlist.TotalVideos != len(playlist.Videos) {
		t.Errorf("total %d does not match %d videos", playlist.TotalVideos, len(playlist.Videos))
	}
	for _, v := range playlist.Videos {
		if v.Duration != "5:09" {
			t.Errorf("video %s: expected formatted duration 5:09, got %q", v.YoutubeID, v.Duration)
		}
	}
}
