package aggregate

import (
	"testing"
	"time"

	"go-ytlens/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func commentsWithScores(scores ...float64) []types.Comment {
	out := make([]types.Comment, 0, len(scores))
	for i, s := range scores {
		out = append(out, types.Comment{
			ID:          string(rune('a' + i%26)),
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
			Sentiment:   s,
		})
	}
	return out
}

func TestSentimentOverTime_Empty(t *testing.T) {
	series := SentimentOverTime(nil, DefaultWindow, DefaultBins)

	assert.Empty(t, series.Times)
	assert.Empty(t, series.Values)
	assert.Empty(t, series.Rolling)
	assert.Equal(t, DefaultBins, series.Histogram.Bins)
	for _, c := range series.Histogram.Counts {
		assert.Zero(t, c)
	}
}

func TestSentimentOverTime_NineteenComments(t *testing.T) {
	scores := make([]float64, 19)
	for i := range scores {
		scores[i] = 0.5
	}

	series := SentimentOverTime(commentsWithScores(scores...), 20, 20)

	require.Len(t, series.Rolling, 19)
	for i, v := range series.Rolling {
		assert.Nil(t, v, "position %d", i)
	}
}

func TestSentimentOverTime_TwentyComments(t *testing.T) {
	scores := make([]float64, 20)
	var sum float64
	for i := range scores {
		scores[i] = float64(i%7)/10 - 0.3
		sum += scores[i]
	}

	series := SentimentOverTime(commentsWithScores(scores...), 20, 20)

	defined := 0
	for _, v := range series.Rolling {
		if v != nil {
			defined++
		}
	}
	assert.Equal(t, 1, defined)
	require.NotNil(t, series.Rolling[19])
	assert.InDelta(t, sum/20, *series.Rolling[19], 1e-12)
}

func TestSentimentOverTime_SortsStably(t *testing.T) {
	comments := []types.Comment{
		{ID: "late", PublishedAt: base.Add(time.Hour), Sentiment: 0.9},
		{ID: "tie-1", PublishedAt: base, Sentiment: 0.1},
		{ID: "early", PublishedAt: base.Add(-time.Hour), Sentiment: -0.5},
		{ID: "tie-2", PublishedAt: base, Sentiment: 0.2},
	}

	series := SentimentOverTime(comments, 2, 20)

	assert.Equal(t, []float64{-0.5, 0.1, 0.2, 0.9}, series.Values)
	assert.True(t, series.Times[0].Equal(base.Add(-time.Hour)))
	assert.Equal(t, "late", comments[0].ID, "input is not reordered")

	require.Len(t, series.Rolling, 4)
	assert.Nil(t, series.Rolling[0])
	assert.InDelta(t, -0.2, *series.Rolling[1], 1e-12)
	assert.InDelta(t, 0.15, *series.Rolling[2], 1e-12)
	assert.InDelta(t, 0.55, *series.Rolling[3], 1e-12)
}

func TestRollingMean(t *testing.T) {
	out := RollingMean([]float64{1, 2, 3, 4}, 3)
	require.Len(t, out, 4)
	assert.Nil(t, out[0])
	assert.Nil(t, out[1])
	assert.InDelta(t, 2.0, *out[2], 1e-12)
	assert.InDelta(t, 3.0, *out[3], 1e-12)

	assert.Empty(t, RollingMean(nil, 20))
}

func TestRollingMean_MatchesWindowSum(t *testing.T) {
	values := make([]float64, 57)
	for i := range values {
		values[i] = float64((i*7)%11-5) / 5
	}

	out := RollingMean(values, DefaultWindow)
	require.Len(t, out, len(values))
	for i := range values {
		if i < DefaultWindow-1 {
			assert.Nil(t, out[i], "index %d", i)
			continue
		}
		var total float64
		for _, v := range values[i-DefaultWindow+1 : i+1] {
			total += v
		}
		require.NotNil(t, out[i], "index %d", i)
		assert.InDelta(t, total/DefaultWindow, *out[i], 1e-9, "index %d", i)
	}
}

func TestHistogram(t *testing.T) {
	h := Histogram([]float64{-1, -0.95, 0, 0.05, 1, 1}, 20, -1, 1)

	require.Len(t, h.Edges, 21)
	require.Len(t, h.Counts, 20)
	assert.InDelta(t, -1.0, h.Edges[0], 1e-12)
	assert.InDelta(t, 1.0, h.Edges[20], 1e-12)

	assert.Equal(t, 2, h.Counts[0])
	assert.Equal(t, 2, h.Counts[10])
	assert.Equal(t, 2, h.Counts[19])

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 6, total)
}
