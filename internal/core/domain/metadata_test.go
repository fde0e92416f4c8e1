package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_SetPreservesInsertionOrder(t *testing.T) {
	m := NewMetadata()
	m.Set(KeyFileHash, "abc123")
	m.Set(KeyOriginalSize, int64(42))
	m.Set(KeyChunkNumber, 1)

	assert.Equal(t, []string{KeyFileHash, KeyOriginalSize, KeyChunkNumber}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMetadata_SetExistingKeyKeepsPosition(t *testing.T) {
	m := NewMetadata()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMetadata_GetString(t *testing.T) {
	m := NewMetadata()
	m.Set(KeyWordCount, 7)
	m.Set(KeyFileHash, "deadbeef")

	assert.Equal(t, "7", m.GetString(KeyWordCount))
	assert.Equal(t, "deadbeef", m.GetString(KeyFileHash))
	assert.Equal(t, "", m.GetString("missing"))
}

func TestMetadata_MergeNeverOverwrites(t *testing.T) {
	m := NewMetadata()
	m.Set(KeyFileHash, "original")
	m.Set(KeyWordCount, 10)

	other := NewMetadata()
	other.Set(KeyFileHash, "clobbered")
	other.Set(KeyLLMSummary, "a summary")

	m.Merge(other)

	assert.Equal(t, "original", m.GetString(KeyFileHash))
	assert.Equal(t, "a summary", m.GetString(KeyLLMSummary))
	assert.Equal(t, []string{KeyFileHash, KeyWordCount, KeyLLMSummary}, m.Keys())
}

func TestMetadata_MergeNil(t *testing.T) {
	m := NewMetadata()
	m.Set("a", 1)
	m.Merge(nil)
	assert.Equal(t, 1, m.Len())
}
