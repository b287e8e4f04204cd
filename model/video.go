package model

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank maps a difficulty to its sort weight. Unknown values sort with
// beginner so a bad label can never push a video to the end of a playlist.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 1
	}
}

type YoutubeVideoID string

type Video struct {
	YoutubeID       YoutubeVideoID `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ChannelTitle    string         `json:"channelTitle"`
	ThumbnailURL    string         `json:"thumbnailUrl"`
	PublishedAt     string         `json:"publishedAt"`
	YoutubeDuration string         `json:"-"`        // raw ISO-8601, e.g. "PT5M9S"
	Duration        string         `json:"duration"` // display form, e.g. "5:09"
	Difficulty      Difficulty     `json:"difficulty"`
	Order           int            `json:"order"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}
