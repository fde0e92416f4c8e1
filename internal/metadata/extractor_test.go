package metadata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDescribeFile(t *testing.T) {
	e := New()
	path := writeFixture(t, "report.txt", "hello world")

	doc, err := e.DescribeFile(path)
	require.NoError(t, err)

	assert.Equal(t, "report", doc.Stem)
	assert.Equal(t, "txt", doc.Extension)
	assert.Equal(t, int64(11), doc.Size)
	// MD5 of "hello world"
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", doc.Hash)
	assert.False(t, doc.ModifiedAt.IsZero())
}

func TestDescribeFile_HashDeterminism(t *testing.T) {
	e := New()
	a := writeFixture(t, "a.txt", "identical bytes")
	b := writeFixture(t, "b.txt", "identical bytes")
	c := writeFixture(t, "c.txt", "identical byteS")

	docA, err := e.DescribeFile(a)
	require.NoError(t, err)
	docB, err := e.DescribeFile(b)
	require.NoError(t, err)
	docC, err := e.DescribeFile(c)
	require.NoError(t, err)

	assert.Equal(t, docA.Hash, docB.Hash)
	assert.NotEqual(t, docA.Hash, docC.Hash)

	// Re-reading the same file yields the same hash.
	again, err := e.DescribeFile(a)
	require.NoError(t, err)
	assert.Equal(t, docA.Hash, again.Hash)
}

func TestDescribeFile_Missing(t *testing.T) {
	e := New()
	_, err := e.DescribeFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestForChunk_CanonicalOrder(t *testing.T) {
	e := New()
	e.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	doc := &domain.SourceDocument{
		Stem:       "doc",
		Extension:  "txt",
		Size:       99,
		Hash:       "cafe",
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		ModifiedAt: time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC),
	}
	chunk := &domain.Chunk{Doc: doc, Number: 2, Total: 3, Text: "plain body words here"}

	meta := e.ForChunk(chunk, nil)

	assert.Equal(t, []string{
		domain.KeyFileHash,
		domain.KeyOriginalSize,
		domain.KeyCreatedDate,
		domain.KeyModifiedDate,
		domain.KeyProcessingTime,
		domain.KeyChunkNumber,
		domain.KeyTotalChunks,
		domain.KeyWordCount,
		domain.KeyDocumentType,
		domain.KeyFirstLine,
		domain.KeyLastLine,
	}, meta.Keys())

	assert.Equal(t, "cafe", meta.GetString(domain.KeyFileHash))
	assert.Equal(t, "2", meta.GetString(domain.KeyChunkNumber))
	assert.Equal(t, "3", meta.GetString(domain.KeyTotalChunks))
	assert.Equal(t, "4", meta.GetString(domain.KeyWordCount))
	assert.Equal(t, "2026-03-01T12:00:00Z", meta.GetString(domain.KeyProcessingTime))
}

func TestForChunk_WordCountIsChunkLocal(t *testing.T) {
	e := New()
	doc := &domain.SourceDocument{Hash: "h", Extension: "txt"}
	chunk := &domain.Chunk{Doc: doc, Number: 1, Total: 5, Text: "only three words"}

	meta := e.ForChunk(chunk, nil)
	assert.Equal(t, "3", meta.GetString(domain.KeyWordCount))
}

func TestForChunk_FirstAndLastLine(t *testing.T) {
	e := New()
	doc := &domain.SourceDocument{Hash: "h"}
	chunk := &domain.Chunk{Doc: doc, Number: 1, Total: 1,
		Text: "\n  first line here  \nmiddle\n last line \n\n"}

	meta := e.ForChunk(chunk, nil)
	assert.Equal(t, "first line here", meta.GetString(domain.KeyFirstLine))
	assert.Equal(t, "last line", meta.GetString(domain.KeyLastLine))
}

func TestForChunk_UserTags(t *testing.T) {
	e := New()
	doc := &domain.SourceDocument{Hash: "h"}
	chunk := &domain.Chunk{Doc: doc, Number: 1, Total: 1, Text: "body"}

	meta := e.ForChunk(chunk, map[string]string{"team": "ml", "env": "prod"})
	assert.Equal(t, "env=prod, team=ml", meta.GetString(domain.KeyUserTags))

	bare := e.ForChunk(chunk, nil)
	assert.False(t, bare.Has(domain.KeyUserTags))
}

func TestExtractHeading(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"all caps", "CHAPTER ONE\nBody text follows.", "CHAPTER ONE"},
		{"title case", "Getting Started\nSome body.", "Getting Started"},
		{"plain sentence", "this is not a heading\nmore", ""},
		{"mixed case word", "Getting STARTED", ""},
		{"title case with digits", "Chapter 1", ""},
		{"empty", "\n\n", ""},
		{"skips leading blanks", "\n\nINTRODUCTION\nbody", "INTRODUCTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHeading(tt.text))
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Server server SERVER cache cache index index tiny word"
	// server x3, cache x2, index x2; "tiny"/"word" too short.
	got := ExtractKeywords(text)
	assert.Equal(t, "server, cache, index", got)
}

func TestExtractKeywords_TieBreakFirstOccurrence(t *testing.T) {
	// All words occur once; first occurrence order decides.
	text := "zebra apple mango banana cherry grape"
	got := ExtractKeywords(text)
	assert.Equal(t, "zebra, apple, mango, banana, cherry", got)
}

func TestExtractKeywords_ShortWordsOnly(t *testing.T) {
	assert.Equal(t, "", ExtractKeywords("a bb ccc dddd"))
}
