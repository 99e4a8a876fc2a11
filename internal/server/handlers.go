package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gistify/internal/article"
	"gistify/internal/errortypes"
	"gistify/internal/metrics"
	"gistify/internal/summarizer"
)

// SummarizeHandler handles summarization submissions.
type SummarizeHandler struct {
	svc                *summarizer.Service
	fetcher            *article.Fetcher
	metrics            *metrics.Metrics
	defaultTargetWords int
	log                *slog.Logger
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(
	svc *summarizer.Service,
	fetcher *article.Fetcher,
	m *metrics.Metrics,
	defaultTargetWords int,
	log *slog.Logger,
) *SummarizeHandler {
	return &SummarizeHandler{
		svc:                svc,
		fetcher:            fetcher,
		metrics:            m,
		defaultTargetWords: defaultTargetWords,
		log:                log,
	}
}

type summarizeRequest struct {
	Text        string `json:"text"`
	URL         string `json:"url"`
	TargetWords int    `json:"target_words"`
}

type summarizeResponse struct {
	Summary           string `json:"summary"`
	Provider          string `json:"provider"`
	Title             string `json:"title,omitempty"`
	OriginalWordCount int    `json:"original_word_count"`
	SummaryWordCount  int    `json:"summary_word_count"`
}

// Summarize handles POST /api/summarize.
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errortypes.Wrap(errortypes.KindValidation, "invalid request body", err))

		return
	}

	if req.TargetWords < 0 {
		respondError(c, errortypes.New(errortypes.KindValidation, "target_words must be positive"))

		return
	}

	text := req.Text
	title := ""

	pageURL := strings.TrimSpace(req.URL)
	if pageURL == "" {
		// The form has a single text box; a submission that is exactly one
		// URL is fetched like an explicit url field.
		trimmedText := strings.TrimSpace(req.Text)
		if found, findErr := article.FindURL(trimmedText); findErr == nil && found != "" && found == trimmedText {
			pageURL = found
		}
	}

	if pageURL != "" {
		page, err := h.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			h.metrics.ObservePageFetch("error")
			h.log.WarnContext(ctx, "Failed to fetch page",
				"error", err,
				"pageURL", pageURL)
			respondError(c, err)

			return
		}

		h.metrics.ObservePageFetch("ok")
		text = page.Text
		title = page.Title
	}

	targetWords := req.TargetWords
	if targetWords == 0 {
		targetWords = h.defaultTargetWords
	}

	start := time.Now()

	summary, err := h.svc.Summarize(ctx, summarizer.Request{
		Text:        text,
		TargetWords: targetWords,
	})
	if err != nil {
		kind, ok := errortypes.KindOf(err)
		if !ok {
			kind = errortypes.KindRemote
		}

		h.metrics.ObserveSummarize(h.svc.Provider(), string(kind), time.Since(start))
		h.log.WarnContext(ctx, "Failed to summarize",
			"error", err,
			"kind", string(kind),
			"targetWords", targetWords)
		respondError(c, err)

		return
	}

	h.metrics.ObserveSummarize(summary.Provider, "ok", time.Since(start))

	respondOK(c, summarizeResponse{
		Summary:           summary.Text,
		Provider:          summary.Provider,
		Title:             title,
		OriginalWordCount: len(strings.Fields(text)),
		SummaryWordCount:  len(strings.Fields(summary.Text)),
	})
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
