package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"persondocs/constants"
)

// ErrUnsupportedType marks extensions outside the extractable set. The
// file is not opened in that case.
var ErrUnsupportedType = errors.New("unsupported file type")

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "image-ocr"
	Duration   time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on the file extension. Failures are
// returned, never panicked, and are terminal for this attempt.
func (e *Extractor) Extract(ctx context.Context, path, ext string) (Result, error) {
	start := time.Now()
	ext = constants.NormalizeExt(ext)
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}
