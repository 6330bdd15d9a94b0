package nlp

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"
)

// VaderScorer is the VADER lexicon and rule based sentiment scorer.
// The analyzer holds only the loaded lexicon and is safe to reuse.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon once.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements SentimentScorer with VADER's compound score.
func (v *VaderScorer) Score(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return ClampScore(v.analyzer.PolarityScores(text).Compound), nil
}
