package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"go-ytlens/types"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// CloudAnalyzer uses the Cloud Natural Language API for both entities and sentiment.
type CloudAnalyzer struct {
	client *language.Client
}

// NewCloudAnalyzer wraps an existing language client.
func NewCloudAnalyzer(client *language.Client) *CloudAnalyzer {
	return &CloudAnalyzer{client: client}
}

// InitLanguageClient creates a language client from base64-encoded
// service account credentials.
func InitLanguageClient(ctx context.Context, encodedCreds string) (*language.Client, error) {
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Natural Language credentials: %w", err)
	}

	client, err := language.NewClient(ctx, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create Natural Language client: %w", err)
	}
	return client, nil
}

// Close releases the underlying client.
func (a *CloudAnalyzer) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

func document(text string) *languagepb.Document {
	return &languagepb.Document{
		Source: &languagepb.Document_Content{
			Content: text,
		},
		Type: languagepb.Document_PLAIN_TEXT,
	}
}

// AnalyzeSentiment returns the document sentiment for text.
func (a *CloudAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (types.Sentiment, error) {
	var sentiment types.Sentiment
	req := &languagepb.AnalyzeSentimentRequest{
		Document:     document(text),
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := a.client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}

	if resp.DocumentSentiment != nil {
		sentiment.Score = resp.DocumentSentiment.Score
		sentiment.Magnitude = resp.DocumentSentiment.Magnitude
	}
	return sentiment, nil
}

// Score implements SentimentScorer with the document sentiment score.
func (a *CloudAnalyzer) Score(ctx context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	sentiment, err := a.AnalyzeSentiment(ctx, text)
	if err != nil {
		return 0, err
	}
	return float64(sentiment.Score), nil
}

// Entities implements EntityRecognizer. Every mention becomes one pair,
// ordered by its offset in the text.
func (a *CloudAnalyzer) Entities(ctx context.Context, text string) ([]types.NamedEntity, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document:     document(text),
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := a.client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	type mention struct {
		offset int32
		entity types.NamedEntity
	}
	var mentions []mention
	for _, e := range resp.Entities {
		entityType := e.Type.String()
		if len(e.Mentions) == 0 {
			mentions = append(mentions, mention{offset: -1, entity: types.NamedEntity{Text: e.Name, Type: entityType}})
			continue
		}
		for _, m := range e.Mentions {
			if m.Text == nil {
				continue
			}
			mentions = append(mentions, mention{
				offset: m.Text.BeginOffset,
				entity: types.NamedEntity{Text: m.Text.Content, Type: entityType},
			})
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].offset < mentions[j].offset
	})

	entities := make([]types.NamedEntity, 0, len(mentions))
	for _, m := range mentions {
		entities = append(entities, m.entity)
	}
	return entities, nil
}
