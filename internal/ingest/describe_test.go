package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"persondocs/constants"
	"persondocs/internal/extract"
	"persondocs/internal/summarize"
)

type fakeExtractor struct {
	text   string
	err    error
	calls  int
	gotExt string
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, ext string) (extract.Result, error) {
	f.calls++
	f.gotExt = ext
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: f.text, Pages: 1, SourceType: constants.PDF, Method: "pdf-text"}, nil
}

type fakeSummarizer struct {
	desc    string
	err     error
	calls   int
	gotText string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.calls++
	f.gotText = text
	return f.desc, f.err
}

func TestDescribeClientUnavailableSkipsExtraction(t *testing.T) {
	ex := &fakeExtractor{text: "something"}
	d := NewDescriber(ex, nil, nil)

	out := d.Describe(context.Background(), "/tmp/a.pdf", "a.pdf")

	assert.Equal(t, KindClientUnavailable, out.Kind)
	assert.Equal(t, "[AI FAILED]: API client not initialized. Check GEMINI_API_KEY setup.", out.DisplayText())
	assert.Zero(t, ex.calls, "extraction must not be attempted without a client")
}

func TestDescribeUnsupportedTypeMakesNoNetworkCall(t *testing.T) {
	ex := &fakeExtractor{err: fmt.Errorf("%w: %q", extract.ErrUnsupportedType, "txt")}
	sum := &fakeSummarizer{desc: "unused"}
	d := NewDescriber(ex, sum, nil)

	out := d.Describe(context.Background(), "/tmp/notes.txt", "notes.txt")

	assert.Equal(t, KindUnsupportedType, out.Kind)
	assert.Equal(t, "txt", out.Detail)
	assert.Equal(t, "[AI Skipped]: File type '.txt' is not supported.", out.DisplayText())
	assert.Zero(t, sum.calls, "summarizer must not be called for unsupported types")
}

func TestDescribeUsesOriginalFilenameExtension(t *testing.T) {
	ex := &fakeExtractor{text: "hello"}
	sum := &fakeSummarizer{desc: "A greeting."}
	d := NewDescriber(ex, sum, nil)

	// stored name differs from the original upload name
	d.Describe(context.Background(), "/uploads/P-1/d41d8cd9.bin", "Invoice March.PDF")

	assert.Equal(t, "pdf", ex.gotExt)
}

func TestDescribeNoReadableText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExtractor{text: tt.text}
			sum := &fakeSummarizer{desc: "unused"}
			d := NewDescriber(ex, sum, nil)

			out := d.Describe(context.Background(), "/tmp/photo.png", "photo.png")

			assert.Equal(t, KindNoReadableText, out.Kind)
			assert.Equal(t, "[AI Skipped]: Document/Image contained no readable text.", out.DisplayText())
			assert.Zero(t, sum.calls)
		})
	}
}

func TestDescribeExtractionFailed(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("read pdf: startxref not found")}
	sum := &fakeSummarizer{desc: "unused"}
	d := NewDescriber(ex, sum, nil)

	out := d.Describe(context.Background(), "/tmp/broken.pdf", "broken.pdf")

	assert.Equal(t, KindExtractionFailed, out.Kind)
	assert.Contains(t, out.DisplayText(), "[AI Error]: Could not read document content locally:")
	assert.Contains(t, out.DisplayText(), "startxref not found")
	assert.Zero(t, sum.calls)
}

func TestDescribeServiceError(t *testing.T) {
	ex := &fakeExtractor{text: "Invoice #1021, due 2024-01-15"}
	sum := &fakeSummarizer{err: &summarize.APIError{Err: errors.New("quota exceeded")}}
	d := NewDescriber(ex, sum, nil)

	out := d.Describe(context.Background(), "/tmp/invoice.pdf", "invoice.pdf")

	assert.Equal(t, KindServiceError, out.Kind)
	assert.Contains(t, out.DisplayText(), "[AI Error]: Summarization API failed on text call.")
	assert.Contains(t, out.DisplayText(), "quota exceeded")
}

func TestDescribeUnexpectedError(t *testing.T) {
	ex := &fakeExtractor{text: "some text"}
	sum := &fakeSummarizer{err: errors.New("connection reset by peer")}
	d := NewDescriber(ex, sum, nil)

	out := d.Describe(context.Background(), "/tmp/a.pdf", "a.pdf")

	assert.Equal(t, KindUnexpectedError, out.Kind)
	assert.Contains(t, out.DisplayText(), "unexpected error")
	assert.Contains(t, out.DisplayText(), "connection reset by peer")
}

func TestDescribeSuccess(t *testing.T) {
	ex := &fakeExtractor{text: "  Invoice #1021, due 2024-01-15  "}
	sum := &fakeSummarizer{desc: "An invoice (#1021) due on 2024-01-15."}
	d := NewDescriber(ex, sum, nil)

	out := d.Describe(context.Background(), "/tmp/invoice.pdf", "invoice.pdf")

	assert.True(t, out.OK())
	assert.Equal(t, "An invoice (#1021) due on 2024-01-15.", out.DisplayText())
	// extracted text is trimmed before being summarized
	assert.Equal(t, "Invoice #1021, due 2024-01-15", sum.gotText)
}
