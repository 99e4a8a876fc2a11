// Package article fetches a public web page and extracts its readable
// text so it can be summarized like pasted text.
package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"mvdan.cc/xurls/v2"

	"gistify/internal/errortypes"
)

const (
	userAgent = "Mozilla/5.0 (compatible; gistify/1.0)"

	defaultFetchTimeout = 30 * time.Second
)

// FindURL returns the first http(s) URL found in text, or "" when there is none.
func FindURL(text string) (string, error) {
	httpsURLRe, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		return "", fmt.Errorf("failed to create regexp: %w", err)
	}

	return strings.TrimSpace(httpsURLRe.FindString(strings.TrimSpace(text))), nil
}

// Page is the extracted content of a fetched page.
type Page struct {
	Title string
	Text  string
}

// Fetcher downloads pages and extracts their readable text. It holds no
// mutable state and is safe for concurrent use.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

// NewFetcher builds a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, log *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Fetch downloads pageURL and extracts its title and paragraph text.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, errortypes.New(errortypes.KindValidation, "page URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errortypes.Wrap(errortypes.KindValidation, "create request", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errortypes.Wrap(errortypes.KindTransport, "fetch page", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"pageURL", pageURL)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errortypes.New(errortypes.KindRemote,
			fmt.Sprintf("fetch page: unexpected status: %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errortypes.Wrap(errortypes.KindRemote, "create document from reader", err)
	}

	title := pageTitle(doc)

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	root := doc.Find("article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var textBuilder strings.Builder
	root.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		fragment := strings.TrimSpace(s.Text())
		if fragment == "" {
			return
		}
		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(fragment)
	})

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return nil, errortypes.New(errortypes.KindValidation, "page has no readable text")
	}

	return &Page{Title: title, Text: text}, nil
}

func pageTitle(doc *goquery.Document) string {
	if content, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}
