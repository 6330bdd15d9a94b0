package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderScorer_Polarity(t *testing.T) {
	scorer := NewVaderScorer()
	ctx := context.Background()

	pos, err := scorer.Score(ctx, "I love this video, it is great!")
	require.NoError(t, err)
	assert.Greater(t, pos, 0.0)

	neg, err := scorer.Score(ctx, "This is terrible and awful.")
	require.NoError(t, err)
	assert.Less(t, neg, 0.0)
}

func TestVaderScorer_Range(t *testing.T) {
	scorer := NewVaderScorer()
	inputs := []string{
		"",
		"   ",
		"ok",
		"GREAT GREAT GREAT!!! love love love :) :) :D best ever amazing wonderful",
		"worst worst hate HATE awful terrible disgusting horrible!!!",
		"12345 ??? <br> &#39;",
	}

	for _, in := range inputs {
		score, err := scorer.Score(context.Background(), in)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, -1.0, in)
		assert.LessOrEqual(t, score, 1.0, in)
	}

	empty, err := scorer.Score(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty)
}

func TestVaderScorer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewVaderScorer().Score(ctx, "fine")
	assert.Error(t, err)
}
