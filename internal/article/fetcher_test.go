package article

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gistify/internal/errortypes"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
	<title>Fallback Title</title>
	<meta property="og:title" content="Example Article">
	<script>var tracking = true;</script>
</head>
<body>
	<nav><a href="/">Home</a></nav>
	<article>
		<h1>Example Article</h1>
		<p>First paragraph of the article body.</p>
		<p>Second paragraph with more detail.</p>
	</article>
	<footer>Copyright</footer>
</body>
</html>`

func testFetcher(t *testing.T, handler http.HandlerFunc) (*Fetcher, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewFetcher(0, slog.New(slog.DiscardHandler)), srv.URL
}

func TestFetchExtractsTitleAndText(t *testing.T) {
	f, url := testFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testPage))
	})

	page, err := f.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Title != "Example Article" {
		t.Errorf("unexpected title: %q", page.Title)
	}

	if !strings.Contains(page.Text, "First paragraph of the article body.") {
		t.Errorf("expected article text, got %q", page.Text)
	}

	if strings.Contains(page.Text, "tracking") || strings.Contains(page.Text, "Copyright") {
		t.Errorf("expected script and footer content to be stripped, got %q", page.Text)
	}
}

func TestFetchUnexpectedStatus(t *testing.T) {
	f, url := testFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := f.Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected error")
	}

	if !errortypes.IsKind(err, errortypes.KindRemote) {
		t.Errorf("expected remote error, got %v", err)
	}
}

func TestFetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(0, slog.New(slog.DiscardHandler))

	_, err := f.Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected error")
	}

	if !errortypes.IsKind(err, errortypes.KindTransport) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestFetchPageWithoutText(t *testing.T) {
	f, url := testFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><img src="only.png"></body></html>`))
	})

	_, err := f.Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected error")
	}

	if !errortypes.IsKind(err, errortypes.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestFindURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Plain URL", "https://example.com/article", "https://example.com/article"},
		{"URL with surrounding whitespace", "  https://example.com/article  ", "https://example.com/article"},
		{"No URL", "just some plain text", ""},
		{"Http scheme", "http://example.com/article", "http://example.com/article"},
		{"Other scheme is ignored", "ftp://example.com/file", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FindURL(test.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}
