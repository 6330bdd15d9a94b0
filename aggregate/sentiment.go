// Package aggregate derives chart-ready summaries from an annotated comment table.
// Every function is a pure function of its input and tolerates an empty table.
package aggregate

import (
	"sort"
	"time"

	"go-ytlens/types"
)

const (
	// DefaultWindow is the rolling mean window, in comments.
	DefaultWindow = 20
	// DefaultBins is the sentiment histogram bin count.
	DefaultBins = 20

	minSentiment = -1.0
	maxSentiment = 1.0
)

// SentimentOverTime orders comments by publish time (stable for equal
// timestamps) and computes the trailing mean of sentiment over window
// comments. Positions before the window fills have no mean.
func SentimentOverTime(comments []types.Comment, window, bins int) types.SentimentSeries {
	if window <= 0 {
		window = DefaultWindow
	}

	ordered := make([]types.Comment, len(comments))
	copy(ordered, comments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PublishedAt.Before(ordered[j].PublishedAt)
	})

	series := types.SentimentSeries{
		Times:   make([]time.Time, 0, len(ordered)),
		Values:  make([]float64, 0, len(ordered)),
		Rolling: make([]*float64, 0, len(ordered)),
		Window:  window,
	}
	for _, c := range ordered {
		series.Times = append(series.Times, c.PublishedAt)
		series.Values = append(series.Values, c.Sentiment)
	}
	series.Rolling = RollingMean(series.Values, window)
	series.Histogram = Histogram(series.Values, bins, minSentiment, maxSentiment)

	return series
}

// RollingMean returns the trailing mean of each window-sized run of values.
// Entries for the first window-1 positions are nil.
func RollingMean(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			mean := sum / float64(window)
			out[i] = &mean
		}
	}
	return out
}

// Histogram counts values into bins equal-width buckets over [min, max].
// Values equal to max land in the last bucket; values outside are clamped.
func Histogram(values []float64, bins int, min, max float64) types.Histogram {
	if bins <= 0 {
		bins = DefaultBins
	}

	h := types.Histogram{
		Bins:   bins,
		Min:    min,
		Max:    max,
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}

	width := (max - min) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = min + float64(i)*width
	}
	h.Edges[bins] = max

	if width <= 0 {
		return h
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}
	return h
}
