package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"persondocs/constants"
)

// extractPDF concatenates the extractable text of every page in page
// order. Pages yielding no text contribute nothing and are not an error;
// only a file that cannot be parsed at all fails.
func (e *Extractor) extractPDF(path string) (res Result, err error) {
	// the pdf library can panic on malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Result{SourceType: constants.PDF}, fmt.Errorf("read pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// a single unreadable page contributes an empty string
			e.logger.Debug("pdf page yielded no text", "path", path, "page", i, "error", err)
			continue
		}
		b.WriteString(text)
	}

	return Result{
		Text:       b.String(),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
	}, nil
}
