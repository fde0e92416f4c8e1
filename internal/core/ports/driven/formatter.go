package driven

import "github.com/docprep-labs/ragprep-cli/internal/core/domain"

// Formatter serialises a chunk plus its metadata mapping into a
// self-describing artifact.
//
// All formatters emit the identical field set for the same input; the
// output format is purely a serialisation choice.
type Formatter interface {
	// Name returns the format name used for registry lookup.
	Name() string

	// Extension returns the artifact file extension without the dot.
	Extension() string

	// Format renders the metadata mapping and chunk text.
	// Metadata fields appear in the mapping's insertion order; values
	// are coerced to their display string (a documented lossy step for
	// non-string values).
	Format(chunkText string, meta *domain.Metadata) (string, error)
}
