package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

// UI serves the embedded single-page form.
type UI struct {
	tmpl               *template.Template
	defaultTargetWords int
}

// NewUI parses the embedded templates.
func NewUI(defaultTargetWords int) (*UI, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &UI{
		tmpl:               tmpl,
		defaultTargetWords: defaultTargetWords,
	}, nil
}

// Index handles GET /.
func (u *UI) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	if err := u.tmpl.Execute(c.Writer, map[string]any{
		"DefaultTargetWords": u.defaultTargetWords,
	}); err != nil {
		_ = c.Error(err)
	}
}
