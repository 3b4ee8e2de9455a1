package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerationUserMessage(t *testing.T) {
	safety := &GenerationError{Kind: GenerationSafety, Message: "blocked"}
	generic := &GenerationError{Kind: GenerationTransport, Message: "down"}

	if msg := GenerationUserMessage(safety); !strings.Contains(msg, "safety") {
		t.Fatalf("safety rejection needs distinct copy, got %q", msg)
	}

	// Every non-safety kind shares the generic retry message.
	want := GenerationUserMessage(generic)
	for _, kind := range []GenerationErrorKind{GenerationTransport, GenerationBadStatus, GenerationMalformed, GenerationSchema} {
		err := &GenerationError{Kind: kind, Message: "x"}
		if got := GenerationUserMessage(err); got != want {
			t.Fatalf("kind %s: got %q, want %q", kind, got, want)
		}
	}

	// Wrapped errors still resolve through errors.As.
	wrapped := fmt.Errorf("search: %w", safety)
	if msg := GenerationUserMessage(wrapped); !strings.Contains(msg, "safety") {
		t.Fatalf("wrapped safety error lost its copy: %q", msg)
	}

	// Unknown errors fall back to the generic message.
	if got := GenerationUserMessage(errors.New("mystery")); got != want {
		t.Fatalf("unknown error: got %q, want %q", got, want)
	}
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &GenerationError{Kind: GenerationTransport, Message: "request failed", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}
	if !strings.Contains(err.Error(), "transport") || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}
