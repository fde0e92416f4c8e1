package chunkers

import (
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Page implements the interface.
var _ driven.ChunkStrategy = (*Page)(nil)

// Page packs whole pages (form-feed delimited blocks, as emitted by PDF
// extraction) into chunks of up to size words. A page is never split
// across chunks.
type Page struct{}

// NewPage creates the page-boundary strategy.
func NewPage() *Page {
	return &Page{}
}

// Name returns the strategy name.
func (p *Page) Name() string {
	return "page"
}

// Chunk splits text on form feeds and packs pages into word-bounded
// chunks, preserving page order. Text without form feeds is a single
// page.
func (p *Page) Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var pages []string
	for _, block := range strings.Split(text, "\f") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}
	if len(pages) == 0 {
		return nil, nil
	}

	return packUnits(pages, size, "\n\n"), nil
}
