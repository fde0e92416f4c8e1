package chunkers

import (
	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Paragraph implements the interface.
var _ driven.ChunkStrategy = (*Paragraph)(nil)

// Paragraph packs whole paragraphs (blank-line delimited blocks) into
// chunks of up to size words. A paragraph is never split across chunks.
type Paragraph struct{}

// NewParagraph creates the paragraph-boundary strategy.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Name returns the strategy name.
func (p *Paragraph) Name() string {
	return "paragraph"
}

// Chunk splits text on blank lines and packs paragraphs into
// word-bounded chunks, preserving paragraph order.
func (p *Paragraph) Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		return nil, nil
	}

	return packUnits(paragraphs, size, "\n\n"), nil
}
