package constants

import "strings"

// File formats the text extractor knows how to handle.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// DefaultAllowedExtensions holds the default allowed upload extensions.
var DefaultAllowedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"docx": {},
	"xlsx": {},
}

// extractableImages are the raster formats handed to OCR.
var extractableImages = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to an extraction format,
// or "" when the extension is outside the supported set.
func MapExtToFormat(ext string) string {
	ext = NormalizeExt(ext)
	if ext == "pdf" {
		return PDF
	}
	if _, ok := extractableImages[ext]; ok {
		return IMAGE
	}
	return ""
}

// MimeTypeForExt derives the content type used when streaming a stored
// file back to the browser.
func MimeTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// ParseExtensionList parses a comma-separated extension list into a
// normalized set. An empty input returns nil so callers can fall back to
// DefaultAllowedExtensions.
func ParseExtensionList(s string) map[string]struct{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	out := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		ext := NormalizeExt(strings.TrimSpace(part))
		if ext != "" {
			out[ext] = struct{}{}
		}
	}
	return out
}
