package chunkers

import (
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Word implements the interface.
var _ driven.ChunkStrategy = (*Word)(nil)

// Word splits text into chunks of a fixed number of whitespace-delimited
// words. The last chunk may hold fewer than size words but never zero.
type Word struct{}

// NewWord creates the word-count strategy.
func NewWord() *Word {
	return &Word{}
}

// Name returns the strategy name.
func (w *Word) Name() string {
	return "word"
}

// Chunk splits text into groups of up to size words, joined with single
// spaces. Re-joining all chunks with single spaces reconstructs the
// whitespace-normalised token stream of the input.
func (w *Word) Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}

	return chunks, nil
}
