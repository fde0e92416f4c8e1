package domain

import "time"

// SourceDocument represents an ingested file and its content-derived facts.
// It is created once at ingestion and read-only thereafter.
type SourceDocument struct {
	// Path is the original file location.
	Path string

	// Stem is the file name without directory or extension.
	// Output artifacts are named "{Stem}_chunk{N}.{ext}".
	Stem string

	// Extension is the lower-cased file extension without the dot.
	Extension string

	// Size is the raw byte length of the file.
	Size int64

	// Hash is the hex-encoded MD5 digest of the file bytes.
	// Identical bytes always produce an identical hash.
	Hash string

	// CreatedAt is the file creation timestamp. On filesystems without
	// a birth time this falls back to the modification timestamp.
	CreatedAt time.Time

	// ModifiedAt is the file modification timestamp.
	ModifiedAt time.Time
}

// Chunk represents a bounded, non-empty slice of a document's extracted text.
// Chunks are immutable once formatted and are discarded after the artifact
// is emitted.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Doc is a back-reference to the source document, used for
	// identity and hash lookup only. The caller retains ownership.
	Doc *SourceDocument

	// Number is the 1-based ordinal position within the document.
	Number int

	// Total is the number of chunks produced for the document.
	Total int

	// Text is the chunk content. Never empty: an input producing
	// no boundary units yields zero chunks, not one empty chunk.
	Text string
}
