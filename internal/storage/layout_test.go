package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondocs/internal/common"
)

func TestPathStaysUnderRoot(t *testing.T) {
	l := NewLayout("/srv/uploads", nil)

	tests := []struct {
		personUID string
		diskName  string
		want      string
	}{
		{"P-001", "invoice.pdf", "/srv/uploads/P-001/invoice.pdf"},
		{"../P-001", "invoice.pdf", "/srv/uploads/P-001/invoice.pdf"},
		{"P-001", "../../etc/passwd", "/srv/uploads/P-001/passwd"},
		{"P 001", "my report.pdf", "/srv/uploads/P_001/my_report.pdf"},
	}
	for _, tt := range tests {
		got := l.Path(tt.personUID, tt.diskName)
		assert.Equal(t, filepath.FromSlash(tt.want), got)
		assert.True(t, strings.HasPrefix(got, filepath.FromSlash("/srv/uploads/")), "escaped root: %q", got)
	}
}

func TestSaveOpenRemove(t *testing.T) {
	l := NewLayout(t.TempDir(), nil)

	path, n, err := l.Save("P-001", "note.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.FileExists(t, path)

	f, err := l.Open("P-001", "note.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello", string(data))

	missing, err := l.Remove("P-001", "note.txt")
	require.NoError(t, err)
	assert.False(t, missing)
	assert.NoFileExists(t, path)
}

func TestOpenMissingFile(t *testing.T) {
	l := NewLayout(t.TempDir(), nil)

	_, err := l.Open("P-001", "ghost.pdf")
	assert.ErrorIs(t, err, common.ErrFileMissing)
}

func TestRemoveAlreadyMissing(t *testing.T) {
	l := NewLayout(t.TempDir(), nil)

	missing, err := l.Remove("P-001", "ghost.pdf")
	require.NoError(t, err)
	assert.True(t, missing)
}

func TestSaveCreatesPersonDirectory(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root, nil)

	_, _, err := l.Save("P-042", "a.txt", strings.NewReader("x"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "P-042"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
