package routes

import (
	"go-ytlens/handlers"
	"go-ytlens/processor"

	"github.com/gin-gonic/gin"
)

func SetupRouter(pipeline *processor.Pipeline, metadata handlers.MetadataSource) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(handlers.IndexTemplate())

	r.GET("/", handlers.GetIndex)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		api.GET("/status", func(c *gin.Context) {
			handlers.GetStatus(c, pipeline)
		})
		api.POST("/dashboard", func(c *gin.Context) {
			handlers.GetDashboard(c, pipeline)
		})
		api.GET("/videos/:id", func(c *gin.Context) {
			handlers.GetVideoInfo(c, metadata)
		})
		api.GET("/channels/:id", func(c *gin.Context) {
			handlers.GetChannelInfo(c, metadata)
		})
	}

	return r
}
