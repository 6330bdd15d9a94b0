package types

import "time"

// Comment is the top-level snippet of one comment thread plus the fields
// added by the annotators.
type Comment struct {
	ID                string    `json:"id"`
	AuthorDisplayName string    `json:"authorDisplayName"`
	TextOriginal      string    `json:"textOriginal"`
	TextDisplay       string    `json:"textDisplay"`
	LikeCount         int64     `json:"likeCount"`
	PublishedAt       time.Time `json:"publishedAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	NER       []NamedEntity  `json:"ner"`
	NERCount  map[string]int `json:"ner_count"`
	NERList   []string       `json:"ner_list"`
	Sentiment float64        `json:"sentiment"`
}

// FetchResult is what the comment fetcher hands back for one video.
// Err is set when pagination stopped on a remote error; Comments then holds
// whatever was accumulated before it.
type FetchResult struct {
	VideoID  string
	Comments []Comment
	Pages    int
	Err      error
}

// Truncated reports whether pagination ended early on an error.
func (r FetchResult) Truncated() bool {
	return r.Err != nil
}
