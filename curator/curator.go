package curator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"learntube/model"
)

const (
	// queryLimit bounds the number of search calls per curation, the
	// expander produces more variants than we are willing to spend quota on.
	queryLimit = 3
	searchSize = 15
	// playlistLimit caps the merged result set after deduplication.
	playlistLimit = 25
)

var ErrNoVideos = errors.New("no videos found")

type SearchRequest struct {
	Query    string
	Language string
	// Difficulty is accepted and stored with the playlist, but does not
	// filter or bias curation. The classifier decides per video.
	Difficulty string
}

type Curator struct {
	searcher   VideoSearcher
	classifier DifficultyClassifier
	logger     *slog.Logger
}

func NewCurator(searcher VideoSearcher, classifier DifficultyClassifier, logger *slog.Logger) *Curator {
	return &Curator{
		searcher:   searcher,
		classifier: classifier,
		logger:     logger,
	}
}

// Curate assembles a learning playlist for one search request: expand the
// query, search every variant, merge and deduplicate the results, classify
// each video's difficulty and order the playlist from beginner to advanced.
// Upstream failures degrade per call, a search that fails contributes no
// videos and a failed classification falls back to beginner. Returns
// ErrNoVideos when no variant produced a result.
func (c *Curator) Curate(ctx context.Context, req SearchRequest) (*model.Playlist, error) {
	if req.Query == "" {
		return nil, errors.New("query is required")
	}
	language := req.Language
	if language == "" {
		language = "en"
	}

	queries := ExpandQuery(req.Query, language)
	if len(queries) > queryLimit {
		queries = queries[:queryLimit]
	}

	all := make([]*model.Video, 0, queryLimit*searchSize)
	for _, query := range queries {
		videos, err := c.searcher.Search(ctx, query, searchSize)
		if err != nil {
			c.logger.Error("search failed", slog.String("query", query), slog.String("error", err.Error()))
			continue
		}
		all = append(all, videos...)
	}

	videos := dedupe(all, playlistLimit)
	if len(videos) == 0 {
		return nil, ErrNoVideos
	}

	c.classify(ctx, videos)

	slices.SortStableFunc(videos, func(a, b *model.Video) bool {
		return a.Difficulty.Rank() < b.Difficulty.Rank()
	})
	for i, video := range videos {
		video.Order = i + 1
	}

	return &model.Playlist{
		ID:              uuid.New(),
		Title:           fmt.Sprintf("%s - Complete Learning Path", req.Query),
		Description:     fmt.Sprintf("AI-curated learning playlist for %s with %d videos", req.Query, len(videos)),
		Query:           req.Query,
		Language:        language,
		Difficulty:      req.Difficulty,
		TotalVideos:     len(videos),
		CompletedVideos: 0,
		Videos:          videos,
		CreatedAt:       time.Now(),
	}, nil
}

// dedupe keeps the first occurrence of every video id, preserving order, and
// truncates to limit.
func dedupe(videos []*model.Video, limit int) []*model.Video {
	seen := make(map[model.YoutubeVideoID]bool, limit)
	unique := make([]*model.Video, 0, limit)
	for _, video := range videos {
		if seen[video.YoutubeID] {
			continue
		}
		seen[video.YoutubeID] = true
		unique = append(unique, video)
		if len(unique) == limit {
			break
		}
	}

	return unique
}

// classify assigns a difficulty and a display duration to every video. The
// calls are independent, so they run concurrently. A failed classification is
// logged and the video keeps the beginner default.
func (c *Curator) classify(ctx context.Context, videos []*model.Video) {
	var wg sync.WaitGroup
	for _, video := range videos {
		wg.Add(1)
		go func(video *model.Video) {
			defer wg.Done()
			difficulty, err := c.classifier.ClassifyDifficulty(ctx, video.Title, video.Description)
			if err != nil {
				c.logger.Error("failed to classify video",
					slog.String("id", string(video.YoutubeID)),
					slog.String("error", err.Error()))
				difficulty = model.DifficultyBeginner
			}
			video.Difficulty = difficulty
			video.Duration = FormatDuration(video.YoutubeDuration)
		}(video)
	}
	wg.Wait()
}
