package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondocs/constants"
)

// stubRunner records the command it was asked to run and returns canned
// output, so OCR paths are testable without a tesseract install.
type stubRunner struct {
	name   string
	args   []string
	stdout []byte
	stderr []byte
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.stdout, s.stderr, s.err
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	for _, ext := range []string{"txt", "gif", "docx", "xlsx", ""} {
		_, err := e.Extract(context.Background(), "/nowhere/file", ext)
		assert.ErrorIs(t, err, ErrUnsupportedType, "ext=%q", ext)
	}
}

func TestExtractImageViaStubbedTesseract(t *testing.T) {
	stub := &stubRunner{stdout: []byte("Invoice #1021, due 2024-01-15\n")}
	e := NewExtractor(Config{TesseractLang: "eng"}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/tmp/photo.png", "PNG")
	require.NoError(t, err)

	assert.Equal(t, "Invoice #1021, due 2024-01-15\n", res.Text)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)

	assert.Equal(t, "tesseract", stub.name)
	assert.Equal(t, []string{"/tmp/photo.png", "stdout", "-l", "eng"}, stub.args)
}

func TestExtractImageOCRFailureIsReturnedNotPanicked(t *testing.T) {
	stub := &stubRunner{err: errors.New("exit status 1"), stderr: []byte("could not load image")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	_, err := e.Extract(context.Background(), "/tmp/broken.jpg", "jpg")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "ocr failed")
	assert.Contains(t, err.Error(), "could not load image")
}

func TestExtractImagePassesTessdataDir(t *testing.T) {
	stub := &stubRunner{stdout: []byte("ok")}
	e := NewExtractor(Config{Tesseract: "/opt/bin/tesseract", TessdataDir: "/opt/tessdata"}, nil)
	e.runner = stub

	_, err := e.Extract(context.Background(), "x.jpeg", "jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/tesseract", stub.name)
	assert.Contains(t, stub.args, "--tessdata-dir")
	assert.Contains(t, stub.args, "/opt/tessdata")
}

func TestExtractPDFUnparsableFile(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	// not a PDF at all: the parser must fail with an error, not panic
	_, err := e.Extract(context.Background(), "extractor_test.go", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read pdf")
}
