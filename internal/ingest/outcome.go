package ingest

import "fmt"

// Kind classifies the result of a describe run. Stable values: these are
// logged and drive the stored placeholder text.
type Kind string

const (
	KindOK                Kind = "OK"
	KindClientUnavailable Kind = "CLIENT_UNAVAILABLE"
	KindUnsupportedType   Kind = "UNSUPPORTED_TYPE"
	KindNoReadableText    Kind = "NO_READABLE_TEXT"
	KindExtractionFailed  Kind = "EXTRACTION_FAILED"
	KindServiceError      Kind = "SERVICE_ERROR"
	KindUnexpectedError   Kind = "UNEXPECTED_ERROR"
)

// Outcome is the tagged result of the ingestion pipeline. Description is
// set only for KindOK; Detail carries the failure specifics for the rest.
type Outcome struct {
	Kind        Kind
	Description string
	Detail      string
}

func (o Outcome) OK() bool { return o.Kind == KindOK }

// DisplayText renders the outcome to the text stored as a document
// description. Failure kinds become bracketed placeholders; formatting
// happens only here, at the persistence boundary.
func (o Outcome) DisplayText() string {
	switch o.Kind {
	case KindOK:
		return o.Description
	case KindClientUnavailable:
		return "[AI FAILED]: API client not initialized. Check GEMINI_API_KEY setup."
	case KindUnsupportedType:
		return fmt.Sprintf("[AI Skipped]: File type '.%s' is not supported.", o.Detail)
	case KindNoReadableText:
		return "[AI Skipped]: Document/Image contained no readable text."
	case KindExtractionFailed:
		return fmt.Sprintf("[AI Error]: Could not read document content locally: %s", o.Detail)
	case KindServiceError:
		return fmt.Sprintf("[AI Error]: Summarization API failed on text call. Detail: %s", o.Detail)
	case KindUnexpectedError:
		return fmt.Sprintf("[AI Error]: An unexpected error occurred during summary generation: %s", o.Detail)
	default:
		return fmt.Sprintf("[AI Error]: %s", o.Detail)
	}
}
