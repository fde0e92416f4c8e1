package chunkers

import (
	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Sentence implements the interface.
var _ driven.ChunkStrategy = (*Sentence)(nil)

// Sentence packs whole sentences into chunks of up to size words.
// A sentence is never split across chunks; a single sentence longer than
// the budget becomes its own chunk.
type Sentence struct{}

// NewSentence creates the sentence-boundary strategy.
func NewSentence() *Sentence {
	return &Sentence{}
}

// Name returns the strategy name.
func (s *Sentence) Name() string {
	return "sentence"
}

// Chunk splits text into sentences and packs them into word-bounded
// chunks, preserving sentence order.
func (s *Sentence) Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	return packUnits(sentences, size, " "), nil
}
