package types

import "time"

// SentimentSeries is the time-ordered view of a comment table.
type SentimentSeries struct {
	Times  []time.Time `json:"times"`
	Values []float64   `json:"values"`
	// Rolling holds the trailing mean per position; nil until the window fills.
	Rolling   []*float64 `json:"rolling"`
	Window    int        `json:"window"`
	Histogram Histogram  `json:"histogram"`
}

// Histogram is a fixed-bin count over [Min, Max].
type Histogram struct {
	Bins   int       `json:"bins"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// LabelCounts is a pair of parallel sequences ready for a bar chart.
type LabelCounts struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// EntityAggregate summarises entities over a whole comment table.
type EntityAggregate struct {
	TopEntities LabelCounts `json:"topEntities"`
	EntityTypes LabelCounts `json:"entityTypes"`
}

// Chart is a titled payload for one dashboard figure.
type Chart struct {
	Title  string `json:"title"`
	XTitle string `json:"xTitle"`
	YTitle string `json:"yTitle"`
}

// Dashboard is the full result of one pipeline run.
type Dashboard struct {
	RunID      string           `json:"runId"`
	VideoID    string           `json:"videoId"`
	VideoURL   string           `json:"videoUrl"`
	EmbedURL   string           `json:"embedUrl"`
	Comments   []Comment        `json:"comments"`
	Sentiment  SentimentSeries  `json:"sentiment"`
	Entities   EntityAggregate  `json:"entities"`
	Charts     map[string]Chart `json:"charts"`
	Locations  []GeocodedEntity `json:"locations,omitempty"`
	Summary    string           `json:"summary,omitempty"`
	Pages      int              `json:"pages"`
	Truncated  bool             `json:"truncated"`
	FetchError string           `json:"fetchError,omitempty"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt time.Time        `json:"finishedAt"`
}
