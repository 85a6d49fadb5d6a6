package common

import (
	"strings"
	"unicode"
)

// StandardizeName lowercases a display name and keeps only letters and
// digits. The result is stored alongside the display name for matching
// and future de-duplication.
func StandardizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeFilename reduces an upload's filename to a safe final path
// segment: directory components are dropped, path separators and
// non-portable runes become underscores, and leading dots are stripped so
// the result can never escape or hide inside the person directory.
func SanitizeFilename(name string) string {
	// keep only the last path component, whatever the client's OS used
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.TrimLeft(b.String(), ".")
	out = strings.Trim(out, " ")
	if out == "" || out == strings.Repeat("_", len(out)) {
		return "file"
	}
	return out
}
