package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Smith", "johnsmith"},
		{"  Mary-Anne O'Neil ", "maryanneoneil"},
		{"ACME Corp. 42", "acmecorp42"},
		{"", ""},
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StandardizeName(tt.in), "in=%q", tt.in)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "invoice.pdf", "invoice.pdf"},
		{"spaces", "my report.pdf", "my_report.pdf"},
		{"unix traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\evil\doc.pdf`, "doc.pdf"},
		{"hidden file", ".bashrc", "bashrc"},
		{"only dots", "...", "file"},
		{"empty", "", "file"},
		{"unicode kept", "résumé.pdf", "résumé.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, `\`)
			assert.NotContains(t, got, "..")
		})
	}
}
