package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"go-ytlens/processor"

	"github.com/gin-gonic/gin"
)

type dashboardRequest struct {
	URL string `json:"url" form:"url"`
}

// GetDashboard runs the pipeline for the submitted video URL.
// An empty URL returns the empty dashboard.
func GetDashboard(c *gin.Context, pipeline *processor.Pipeline) {
	var request dashboardRequest
	if err := c.ShouldBind(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A submission runs to completion even if the browser goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	dashboard, err := pipeline.Run(ctx, request.URL)
	switch {
	case errors.Is(err, processor.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, processor.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("Error building dashboard for %q: %v", request.URL, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetStatus reports the pipeline state and the last run.
func GetStatus(c *gin.Context, pipeline *processor.Pipeline) {
	c.JSON(http.StatusOK, pipeline.Status())
}
