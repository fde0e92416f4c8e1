package driven

// ChunkStrategy splits plain text into an ordered sequence of non-empty
// chunks under one boundary rule (word, sentence, paragraph, page,
// semantic).
//
// Every strategy satisfies the same coverage guarantee: no boundary unit
// is dropped or split across chunks, and re-joining all chunks with the
// strategy's join rule reconstructs the whitespace-normalised unit stream
// of the input.
type ChunkStrategy interface {
	// Name returns the strategy name used for registry lookup.
	Name() string

	// Chunk splits text into chunks of up to size units.
	// A non-positive size is rejected with domain.ErrInvalidInput before
	// any text is read. Empty or whitespace-only text yields an empty
	// sequence, not an error.
	Chunk(text string, size int) ([]string, error)
}
