package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

// IndexTemplate parses the dashboard page.
func IndexTemplate() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/index.html"))
}

// GetIndex serves the dashboard page.
func GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "YouTube NLP Dashboard",
	})
}
