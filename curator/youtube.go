package curator

import (
	"context"
	"strings"

	"google.golang.org/api/youtube/v3"

	"learntube/model"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

// Search runs a relevance-ordered video search for one query and follows up
// with a single batched videos.list call to attach precise durations. Videos
// missing from the details response keep a zero duration.
func (y *Youtube) Search(ctx context.Context, query string, maxResults int64) ([]*model.Video, error) {
	call := y.Client.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		VideoDuration("medium").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return []*model.Video{}, err
	}

	videos := make([]*model.Video, 0, len(response.Items))
	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		video := &model.Video{
			YoutubeID:       model.YoutubeVideoID(item.Id.VideoId),
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			ChannelTitle:    item.Snippet.ChannelTitle,
			PublishedAt:     item.Snippet.PublishedAt,
			YoutubeDuration: "PT0S",
		}
		if item.Snippet.Thumbnails != nil {
			video.ThumbnailURL = thumbnailURL(item.Snippet.Thumbnails)
		}
		videos = append(videos, video)
		ids = append(ids, item.Id.VideoId)
	}

	if len(ids) == 0 {
		return videos, nil
	}

	durations, err := y.fetchDurations(ctx, ids)
	if err != nil {
		return []*model.Video{}, err
	}
	for _, video := range videos {
		if d, ok := durations[video.YoutubeID]; ok {
			video.YoutubeDuration = d
		}
	}

	return videos, nil
}

func (y *Youtube) fetchDurations(ctx context.Context, ids []string) (map[model.YoutubeVideoID]string, error) {
	call := y.Client.Videos.
		List([]string{"contentDetails"}).
		Id(strings.Join(ids, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return map[model.YoutubeVideoID]string{}, err
	}

	durations := make(map[model.YoutubeVideoID]string, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil {
			continue
		}
		durations[model.YoutubeVideoID(item.Id)] = item.ContentDetails.Duration
	}

	return durations, nil
}

func thumbnailURL(details *youtube.ThumbnailDetails) string {
	for _, t := range []*youtube.Thumbnail{details.High, details.Medium, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
