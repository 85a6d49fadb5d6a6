package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"pdf", PDF},
		{".PDF", PDF},
		{"jpg", IMAGE},
		{"JPEG", IMAGE},
		{".png", IMAGE},
		{"txt", ""},
		{"gif", ""},
		{"docx", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToFormat(tt.ext), "ext=%q", tt.ext)
	}
}

func TestMimeTypeForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".pdf", "application/pdf"},
		{"jpg", "image/jpeg"},
		{"JPEG", "image/jpeg"},
		{"png", "image/png"},
		{"gif", "application/octet-stream"},
		{"txt", "application/octet-stream"},
		{"", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MimeTypeForExt(tt.ext), "ext=%q", tt.ext)
	}
}

func TestParseExtensionList(t *testing.T) {
	assert.Nil(t, ParseExtensionList(""))
	assert.Nil(t, ParseExtensionList("   "))

	got := ParseExtensionList("PDF, .jpg,png ,")
	assert.Equal(t, map[string]struct{}{"pdf": {}, "jpg": {}, "png": {}}, got)
}
