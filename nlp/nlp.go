package nlp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go-ytlens/types"
)

// EntityRecognizer finds named entities in a piece of text.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]types.NamedEntity, error)
}

// SentimentScorer returns a compound polarity score for a piece of text.
type SentimentScorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// PerformNER runs the recognizer over text and returns the (text, type) pairs
// in the order they appear.
func PerformNER(ctx context.Context, recognizer EntityRecognizer, text string) ([]types.NamedEntity, error) {
	if strings.TrimSpace(text) == "" {
		return []types.NamedEntity{}, nil
	}
	entities, err := recognizer.Entities(ctx, text)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []types.NamedEntity{}
	}
	return entities, nil
}

// CountNER counts entities per type label.
func CountNER(entities []types.NamedEntity) map[string]int {
	counts := make(map[string]int)
	for _, e := range entities {
		counts[e.Type]++
	}
	return counts
}

// ExtractNER returns the lower-cased entity texts.
func ExtractNER(entities []types.NamedEntity) []string {
	list := make([]string, 0, len(entities))
	for _, e := range entities {
		list = append(list, strings.ToLower(e.Text))
	}
	return list
}

// ApplyNER fills NER, NERCount and NERList on every comment, one at a time,
// from TextDisplay. The first recognizer error aborts the whole table.
func ApplyNER(ctx context.Context, recognizer EntityRecognizer, comments []types.Comment) error {
	for i := range comments {
		entities, err := PerformNER(ctx, recognizer, comments[i].TextDisplay)
		if err != nil {
			return fmt.Errorf("entity recognition failed on comment %d (%s): %w", i, comments[i].ID, err)
		}
		comments[i].NER = entities
		comments[i].NERCount = CountNER(entities)
		comments[i].NERList = ExtractNER(entities)
	}
	return nil
}

// ApplySentiment fills Sentiment on every comment from TextDisplay.
func ApplySentiment(ctx context.Context, scorer SentimentScorer, comments []types.Comment) error {
	for i := range comments {
		score, err := scorer.Score(ctx, comments[i].TextDisplay)
		if err != nil {
			return fmt.Errorf("sentiment scoring failed on comment %d (%s): %w", i, comments[i].ID, err)
		}
		comments[i].Sentiment = ClampScore(score)
	}
	return nil
}

// ClampScore keeps a polarity score inside [-1, 1]; NaN becomes 0.
func ClampScore(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score > 1:
		return 1
	case score < -1:
		return -1
	}
	return score
}

// ComputeSimpleAverageSentiment averages the sentiment of a comment table.
func ComputeSimpleAverageSentiment(comments []types.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}

	var total float64
	for _, c := range comments {
		total += c.Sentiment
	}
	return total / float64(len(comments))
}
