package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"gistify/internal/metrics"
)

// Setup configures the gin engine with all routes and middleware.
func Setup(
	summarizeH *SummarizeHandler,
	ui *UI,
	m *metrics.Metrics,
	log *slog.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(Recovery())
	r.Use(RequestID())
	r.Use(Logger(log))

	r.GET("/healthz", Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.GET("/", ui.Index)

	api := r.Group("/api")
	api.POST("/summarize", summarizeH.Summarize)

	return r
}
