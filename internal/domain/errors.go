package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrNoPreviousSearch = errors.New("no previous search to repeat")
)

// GenerationErrorKind classifies why a generation request failed.
type GenerationErrorKind int

const (
	// GenerationTransport covers network-level failures.
	GenerationTransport GenerationErrorKind = iota
	// GenerationBadStatus covers non-success responses from the service.
	GenerationBadStatus
	// GenerationMalformed covers payloads that are not valid JSON.
	GenerationMalformed
	// GenerationSchema covers valid JSON that violates the recipes schema.
	GenerationSchema
	// GenerationSafety covers content-safety rejections by the service.
	GenerationSafety
)

// String returns a human-readable kind name.
func (k GenerationErrorKind) String() string {
	switch k {
	case GenerationTransport:
		return "transport"
	case GenerationBadStatus:
		return "bad_status"
	case GenerationMalformed:
		return "malformed"
	case GenerationSchema:
		return "schema"
	case GenerationSafety:
		return "safety"
	default:
		return "unknown"
	}
}

// GenerationError is any failure of the generation client. The raw
// payload and underlying cause stay attached so the caller can log them;
// they are never shown to the user.
type GenerationError struct {
	Kind    GenerationErrorKind
	Message string
	// Raw is the unparsed service payload, when one was received.
	Raw string
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("generation %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *GenerationError) Unwrap() error { return e.Err }

// UserMessage returns the presentable text for this failure. Only safety
// rejections get distinct copy; everything else shares one retry message.
func (e *GenerationError) UserMessage() string {
	if e.Kind == GenerationSafety {
		return "The request was declined by the AI's safety filters. Please adjust your search and try again."
	}
	return "Could not fetch recipes. Please try again in a moment."
}

// GenerationUserMessage extracts presentable text from any error returned
// by a recipe generator.
func GenerationUserMessage(err error) string {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.UserMessage()
	}
	return "Could not fetch recipes. Please try again in a moment."
}
