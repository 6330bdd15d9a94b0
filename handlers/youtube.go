package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ytapi "google.golang.org/api/youtube/v3"
)

// MetadataSource looks up video and channel details.
type MetadataSource interface {
	GetVideoInfo(ctx context.Context, videoID string) (*ytapi.VideoListResponse, error)
	GetChannelInfo(ctx context.Context, channelID string) (*ytapi.ChannelListResponse, error)
}

func GetVideoInfo(c *gin.Context, source MetadataSource) {
	videoID := strings.TrimSpace(c.Param("id"))
	resp, err := source.GetVideoInfo(c.Request.Context(), videoID)
	if err != nil {
		log.Printf("Error fetching video info: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(resp.Items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found", "id": videoID})
		return
	}
	c.JSON(http.StatusOK, resp.Items[0])
}

func GetChannelInfo(c *gin.Context, source MetadataSource) {
	channelID := strings.TrimSpace(c.Param("id"))
	resp, err := source.GetChannelInfo(c.Request.Context(), channelID)
	if err != nil {
		log.Printf("Error fetching channel info: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(resp.Items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found", "id": channelID})
		return
	}
	c.JSON(http.StatusOK, resp.Items[0])
}
