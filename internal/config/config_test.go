package config

import (
	"os"
	"testing"
	"time"

	"gistify/internal/errortypes"
)

// unsetenv clears variables for the test while keeping t.Setenv's restore.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t,
		"ADDR",
		"SUMMARIZER_PROVIDER",
		"SUMMARIZER_MODEL",
		"OPENAI_API_KEY",
		"REQUEST_TIMEOUT",
		"DEFAULT_TARGET_WORDS")
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("unexpected addr: %q", cfg.Addr)
	}

	if cfg.Provider != "google" {
		t.Errorf("unexpected provider: %q", cfg.Provider)
	}

	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.RequestTimeout)
	}

	if cfg.DefaultTargetWords != 50 {
		t.Errorf("unexpected default target words: %d", cfg.DefaultTargetWords)
	}
}

func TestLoadMissingCredential(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		googleKey string
		openaiKey string
	}{
		{"Google without key", "google", "", "other-key"},
		{"OpenAI without key", "openai", "other-key", ""},
		{"Whitespace key", "google", "   ", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("SUMMARIZER_PROVIDER", test.provider)
			t.Setenv("GOOGLE_API_KEY", test.googleKey)
			t.Setenv("OPENAI_API_KEY", test.openaiKey)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error")
			}

			if !errortypes.IsKind(err, errortypes.KindConfiguration) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadUnknownProvider(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "anthropic")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "test-key")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}

	if !errortypes.IsKind(err, errortypes.KindConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestAPIKeyTrimsWhitespace(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "google")
	t.Setenv("GOOGLE_API_KEY", "  test-key  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key, err := cfg.APIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "test-key" {
		t.Errorf("expected trimmed key, got %q", key)
	}
}
