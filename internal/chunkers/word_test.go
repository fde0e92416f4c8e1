package chunkers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
)

func TestWord_Chunk_Example(t *testing.T) {
	w := NewWord()
	chunks, err := w.Chunk("The quick brown fox jumps over the lazy dog", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"The quick brown",
		"fox jumps over",
		"the lazy dog",
	}, chunks)
}

func TestWord_Chunk_LastChunkMayBeShort(t *testing.T) {
	w := NewWord()
	chunks, err := w.Chunk("one two three four five", 2)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, "five", chunks[2])
}

func TestWord_Chunk_InvalidSize(t *testing.T) {
	w := NewWord()
	for _, size := range []int{0, -1} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			_, err := w.Chunk("some text", size)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestWord_Chunk_EmptyInput(t *testing.T) {
	w := NewWord()
	for _, text := range []string{"", "   ", "\n\t \n"} {
		chunks, err := w.Chunk(text, 10)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	}
}

func TestWord_Chunk_CoverageAndSizing(t *testing.T) {
	// Joining all chunks with single spaces must reconstruct the
	// whitespace-normalised token stream; every chunk but the last must
	// hold exactly size words and the count must be ceil(N/size).
	inputs := []string{
		"a b c d e f g",
		"The  quick\tbrown\n\nfox jumps over the lazy dog",
		"single",
		strings.Repeat("lorem ipsum dolor sit amet ", 40),
	}

	w := NewWord()
	for _, text := range inputs {
		words := strings.Fields(text)
		for _, size := range []int{1, 2, 3, 7, 100} {
			chunks, err := w.Chunk(text, size)
			require.NoError(t, err)

			expected := (len(words) + size - 1) / size
			require.Len(t, chunks, expected, "size %d input %q", size, text)

			for i, chunk := range chunks {
				n := len(strings.Fields(chunk))
				if i < len(chunks)-1 {
					assert.Equal(t, size, n)
				} else {
					assert.GreaterOrEqual(t, n, 1)
					assert.LessOrEqual(t, n, size)
				}
				assert.NotEmpty(t, strings.TrimSpace(chunk))
			}

			rejoined := strings.Join(chunks, " ")
			assert.Equal(t, strings.Join(words, " "), rejoined)
		}
	}
}
