package chunkers

import (
	"fmt"
	"sort"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = "word"

// builders maps strategy names to constructors.
var builders = map[string]func() driven.ChunkStrategy{
	"word":      func() driven.ChunkStrategy { return NewWord() },
	"sentence":  func() driven.ChunkStrategy { return NewSentence() },
	"paragraph": func() driven.ChunkStrategy { return NewParagraph() },
	"page":      func() driven.ChunkStrategy { return NewPage() },
	"semantic":  func() driven.ChunkStrategy { return NewSemantic() },
}

// New creates a strategy by name.
// Returns domain.ErrUnknownStrategy for unregistered names.
func New(name string) (driven.ChunkStrategy, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, name)
	}
	return builder(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
