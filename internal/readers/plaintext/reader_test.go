package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_UTF8(t *testing.T) {
	r := New()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo wörld"), 0600))

	text, err := r.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", text)
}

func TestExtract_Latin1Fallback(t *testing.T) {
	r := New()
	path := filepath.Join(t.TempDir(), "legacy.txt")
	// "café" in Latin-1: é is 0xE9, invalid as UTF-8.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0600))

	text, err := r.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestExtract_MissingFile(t *testing.T) {
	r := New()
	_, err := r.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestExtensions(t *testing.T) {
	assert.Contains(t, New().Extensions(), "txt")
}
