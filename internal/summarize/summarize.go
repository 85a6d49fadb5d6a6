package summarize

import (
	"context"
	"strings"
)

const (
	// MaxInputChars bounds the request payload sent to the generation
	// service.
	MaxInputChars = 30000
	// MaxDescriptionChars bounds the stored description length.
	MaxDescriptionChars = 65535
)

// Summarizer produces a short description for extracted document text.
// Service-reported failures are returned as *APIError; anything else is
// an unexpected failure.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// APIError wraps an error the generation service itself reported, as
// opposed to network or decoding failures.
type APIError struct {
	Err error
}

func (e *APIError) Error() string { return e.Err.Error() }
func (e *APIError) Unwrap() error { return e.Err }

// TruncateInput caps text at exactly MaxInputChars characters.
func TruncateInput(s string) string {
	r := []rune(s)
	if len(r) <= MaxInputChars {
		return s
	}
	return string(r[:MaxInputChars])
}

// ClampDescription trims surrounding whitespace and caps the result at
// MaxDescriptionChars characters.
func ClampDescription(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= MaxDescriptionChars {
		return s
	}
	return string(r[:MaxDescriptionChars])
}
