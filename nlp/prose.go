package nlp

import (
	"context"
	"fmt"

	"go-ytlens/types"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs prose's pretrained English entity model locally.
// Labels are PERSON, GPE and the other tags the bundled model emits.
type ProseRecognizer struct{}

// NewProseRecognizer returns a local entity recognizer.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities implements EntityRecognizer.
func (p *ProseRecognizer) Entities(ctx context.Context, text string) ([]types.NamedEntity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	ents := doc.Entities()
	entities := make([]types.NamedEntity, 0, len(ents))
	for _, e := range ents {
		entities = append(entities, types.NamedEntity{Text: e.Text, Type: e.Label})
	}
	return entities, nil
}
