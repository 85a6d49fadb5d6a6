package ingest

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"persondocs/constants"
	"persondocs/internal/extract"
	"persondocs/internal/summarize"
)

// TextExtractor is the narrow extraction contract the pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, path, ext string) (extract.Result, error)
}

// Describer orchestrates extraction then summarization for a stored
// upload. It never fails: every failure mode is absorbed into a tagged
// Outcome and the upload proceeds regardless.
type Describer struct {
	extractor  TextExtractor
	summarizer summarize.Summarizer
	logger     *slog.Logger
}

// NewDescriber wires the pipeline. A nil summarizer is valid and makes
// every run report KindClientUnavailable without touching the file.
func NewDescriber(ex TextExtractor, s summarize.Summarizer, logger *slog.Logger) *Describer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Describer{extractor: ex, summarizer: s, logger: logger}
}

// Describe derives a description for the file at path. The extension is
// taken from the original upload filename, not the on-disk name, which
// may have been sanitized or renamed.
func (d *Describer) Describe(ctx context.Context, path, originalFilename string) Outcome {
	if d.summarizer == nil {
		return Outcome{Kind: KindClientUnavailable}
	}

	ext := constants.NormalizeExt(filepath.Ext(originalFilename))

	res, err := d.extractor.Extract(ctx, path, ext)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			d.logger.Info("describe.skipped", "path", path, "ext", ext)
			return Outcome{Kind: KindUnsupportedType, Detail: ext}
		}
		d.logger.Warn("describe.extraction_failed", "path", path, "ext", ext, "error", err)
		return Outcome{Kind: KindExtractionFailed, Detail: err.Error()}
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		d.logger.Info("describe.no_text", "path", path, "method", res.Method, "pages", res.Pages)
		return Outcome{Kind: KindNoReadableText}
	}

	desc, err := d.summarizer.Summarize(ctx, text)
	if err != nil {
		var apiErr *summarize.APIError
		if errors.As(err, &apiErr) {
			return Outcome{Kind: KindServiceError, Detail: err.Error()}
		}
		return Outcome{Kind: KindUnexpectedError, Detail: err.Error()}
	}

	d.logger.Info("describe.ok", "path", path, "method", res.Method, "desc_len", len(desc))
	return Outcome{Kind: KindOK, Description: desc}
}
