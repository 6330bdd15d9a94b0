// Package youtube fetches comment threads and metadata from the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-ytlens/types"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// MaxPageSize is the largest page commentThreads.list accepts.
const MaxPageSize = 100

// Client is the one YouTube handle shared by every submission.
// It carries only read-only configuration.
type Client struct {
	service  *ytapi.Service
	pageSize int64
}

// NewClient creates a YouTube client authenticated with a static API key.
// pageSize outside 1..100 falls back to 100. Extra google options (endpoint,
// http client) are passed through.
func NewClient(ctx context.Context, apiKey string, pageSize int, apiOpts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube api key is empty")
	}

	apiOpts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, apiOpts...)
	svc, err := ytapi.NewService(ctx, apiOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &Client{
		service:  svc,
		pageSize: int64(pageSize),
	}, nil
}

// FetchComments pages through every top-level comment of a video.
// A remote error stops pagination; the comments gathered so far are kept and
// the error is recorded on the result rather than returned.
func (c *Client) FetchComments(ctx context.Context, videoID string) types.FetchResult {
	result := types.FetchResult{
		VideoID:  videoID,
		Comments: []types.Comment{},
	}

	pageToken := ""
	for {
		call := c.service.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(c.pageSize)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Context(ctx).Do()
		if err != nil {
			logFetchError(videoID, err)
			result.Err = err
			break
		}
		result.Pages++

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil {
				continue
			}
			result.Comments = append(result.Comments, toComment(item.Snippet.TopLevelComment))
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	log.Printf("Fetched %d comments over %d pages for video %s", len(result.Comments), result.Pages, videoID)
	return result
}

// GetVideoInfo returns snippet, content details and statistics for a video.
func (c *Client) GetVideoInfo(ctx context.Context, videoID string) (*ytapi.VideoListResponse, error) {
	resp, err := c.service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list %s: %w", videoID, err)
	}
	return resp, nil
}

// GetChannelInfo returns snippet, content details, statistics and branding for a channel.
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) (*ytapi.ChannelListResponse, error) {
	resp, err := c.service.Channels.
		List([]string{"snippet", "contentDetails", "statistics", "brandingSettings"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list %s: %w", channelID, err)
	}
	return resp, nil
}

func toComment(tc *ytapi.Comment) types.Comment {
	var comment types.Comment
	comment.ID = tc.Id
	if s := tc.Snippet; s != nil {
		comment.AuthorDisplayName = s.AuthorDisplayName
		comment.TextOriginal = s.TextOriginal
		comment.TextDisplay = s.TextDisplay
		comment.LikeCount = s.LikeCount
		comment.PublishedAt = parseTimestamp(s.PublishedAt)
		comment.UpdatedAt = parseTimestamp(s.UpdatedAt)
	}
	return comment
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Printf("Unparseable comment timestamp %q: %v", s, err)
		return time.Time{}
	}
	return t
}

func logFetchError(videoID string, err error) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		log.Printf("An HTTP error %d occurred fetching comments for %s: %s", apiErr.Code, videoID, apiErr.Message)
		return
	}
	log.Printf("Error fetching comments for %s: %v", videoID, err)
}
