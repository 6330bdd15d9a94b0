package summarization

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"go-ytlens/types"

	"github.com/sashabaranov/go-openai"
)

const maxCommentsForSummary = 69
const maxPromptLength = 15000 // Rough character limit for prompt

// Summarizer asks an OpenAI chat model for a short digest of a comment table.
type Summarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer wraps an OpenAI client.
func NewSummarizer(client *openai.Client) *Summarizer {
	return &Summarizer{client: client, model: openai.GPT4oMini}
}

// SummarizeComments summarises the most liked comments of a video.
// It returns an empty summary without calling the API when there is no text.
func (s *Summarizer) SummarizeComments(ctx context.Context, videoID string, comments []types.Comment) (string, error) {
	combined := combineComments(comments)
	if combined == "" {
		log.Printf("No comment text to summarize for video %s", videoID)
		return "", nil
	}

	log.Printf("Requesting summary from OpenAI for video %s...", videoID)
	summary, err := s.callOpenAISummary(ctx, combined)
	if err != nil {
		return "", err
	}
	log.Printf("Received summary for video %s.", videoID)
	return summary, nil
}

// combineComments picks the most liked comments (ties keep table order) and
// joins them, truncated to maxPromptLength bytes on a rune boundary.
func combineComments(comments []types.Comment) string {
	ranked := make([]types.Comment, 0, len(comments))
	for _, c := range comments {
		if strings.TrimSpace(c.TextOriginal) != "" {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikeCount > ranked[j].LikeCount
	})
	if len(ranked) > maxCommentsForSummary {
		ranked = ranked[:maxCommentsForSummary]
	}
	if len(ranked) == 0 {
		return ""
	}

	texts := make([]string, 0, len(ranked))
	for _, c := range ranked {
		texts = append(texts, c.TextOriginal)
	}
	combined := strings.Join(texts, "\n---\n")

	if len(combined) > maxPromptLength {
		log.Printf("Warning: combined comment text exceeds max length (%d), truncating.", maxPromptLength)
		cut := maxPromptLength
		for cut > 0 && !utf8.RuneStart(combined[cut]) {
			cut--
		}
		combined = combined[:cut]
	}
	return combined
}

// callOpenAISummary sends text to OpenAI and requests a summary.
func (s *Summarizer) callOpenAISummary(ctx context.Context, commentText string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following YouTube comments. Focus on the main opinions, recurring topics and people or places mentioned. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", commentText)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes YouTube comment sections concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
