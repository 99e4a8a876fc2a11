package errortypes

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantOK   bool
	}{
		{
			"Plain typed error",
			New(KindValidation, "source text is empty"),
			KindValidation,
			true,
		},
		{
			"Wrapped typed error",
			fmt.Errorf("handle request: %w", Wrap(KindTransport, "call google API", errors.New("connection refused"))),
			KindTransport,
			true,
		},
		{
			"Untyped error",
			errors.New("boom"),
			"",
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, ok := KindOf(test.err)

			if ok != test.wantOK {
				t.Fatalf("expected ok=%v, got %v", test.wantOK, ok)
			}

			if kind != test.wantKind {
				t.Errorf("expected kind %q, got %q", test.wantKind, kind)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := Wrap(KindTransport, "call google API", cause)
	if got := wrapped.Error(); got != "call google API: connection refused" {
		t.Errorf("unexpected message: %q", got)
	}

	if !errors.Is(wrapped, cause) {
		t.Errorf("expected wrapped error to match its cause")
	}

	plain := New(KindEmptyResponse, "provider returned no usable content")
	if got := plain.Error(); got != "provider returned no usable content" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := New(KindRemote, "quota exceeded")

	if !IsKind(err, KindRemote) {
		t.Errorf("expected remote kind to match")
	}

	if IsKind(err, KindTransport) {
		t.Errorf("expected transport kind not to match")
	}
}
