package chunkers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
)

func TestParagraph_Chunk_PacksWholeParagraphs(t *testing.T) {
	p := NewParagraph()
	text := "First paragraph here.\n\nSecond paragraph with more words inside it.\n\nThird."

	chunks, err := p.Chunk(text, 6)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	// No paragraph may be split: rejoining chunks on the paragraph
	// separator must reproduce the paragraph sequence.
	var got []string
	for _, chunk := range chunks {
		got = append(got, strings.Split(chunk, "\n\n")...)
	}
	assert.Equal(t, splitParagraphs(text), got)
}

func TestParagraph_Chunk_CRLFInput(t *testing.T) {
	p := NewParagraph()
	chunks, err := p.Chunk("one two\r\n\r\nthree four", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one two", "three four"}, chunks)
}

func TestParagraph_Chunk_InvalidSize(t *testing.T) {
	p := NewParagraph()
	_, err := p.Chunk("text", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParagraph_Chunk_EmptyInput(t *testing.T) {
	p := NewParagraph()
	chunks, err := p.Chunk("\n\n\n", 5)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestPage_Chunk_SplitsOnFormFeed(t *testing.T) {
	pg := NewPage()
	chunks, err := pg.Chunk("page one text\fpage two text\fpage three", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"page one text", "page two text", "page three"}, chunks)
}

func TestPage_Chunk_NoFormFeedIsSinglePage(t *testing.T) {
	pg := NewPage()
	chunks, err := pg.Chunk("just one page of words", 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"just one page of words"}, chunks)
}

func TestPage_Chunk_PacksSmallPages(t *testing.T) {
	pg := NewPage()
	chunks, err := pg.Chunk("a b\fc d\fe f", 4)
	require.NoError(t, err)
	// Two pages fit in the four-word budget; the third starts a new chunk.
	assert.Equal(t, []string{"a b\n\nc d", "e f"}, chunks)
}

func TestPage_Chunk_InvalidSize(t *testing.T) {
	pg := NewPage()
	_, err := pg.Chunk("text", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
