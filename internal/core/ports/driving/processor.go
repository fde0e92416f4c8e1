package driving

import "context"

// DocumentProcessor runs the chunking pipeline over input documents.
type DocumentProcessor interface {
	// ProcessDirectory reads every supported file in opts.InputDir,
	// chunks it, attaches metadata, and writes one artifact per chunk.
	// Documents are isolated: a failure in one is reported as a skip
	// and never affects another.
	ProcessDirectory(ctx context.Context, opts ProcessOptions) (*Report, error)

	// ProcessFile runs the pipeline for a single document.
	ProcessFile(ctx context.Context, path string, opts ProcessOptions) (*DocumentResult, error)
}

// ProcessOptions configures one pipeline run.
// ChunkSize, Strategy and Format are validated before any I/O.
type ProcessOptions struct {
	// InputDir is the directory scanned for supported documents.
	InputDir string

	// ChunkSize is the number of boundary units per chunk. Must be > 0.
	ChunkSize int

	// Strategy is the chunking strategy name (word, sentence,
	// paragraph, page, semantic).
	Strategy string

	// Format is the output format name (txt, json, csv).
	Format string

	// Enrich enables LLM metadata enrichment. Requires a configured
	// LLM service; without one the run is rejected up front.
	Enrich bool

	// Workers bounds document-level concurrency. Zero means the default.
	Workers int

	// UserTags are caller-supplied annotations stored under the
	// user_tags metadata field.
	UserTags map[string]string
}

// Report summarises one ProcessDirectory run.
type Report struct {
	// Documents holds one entry per input file, in completion order.
	Documents []DocumentResult

	// ChunksWritten is the total artifact count across documents.
	ChunksWritten int

	// Skipped is the number of documents that produced no artifacts.
	Skipped int
}

// DocumentResult describes the outcome for a single document.
type DocumentResult struct {
	// Path is the input file path.
	Path string

	// Chunks is the number of artifacts written for this document.
	Chunks int

	// Degraded is the number of enrichment fields that failed and were
	// embedded as error markers.
	Degraded int

	// Skipped is true when the document produced no artifacts.
	Skipped bool

	// SkipReason explains a skip (unreadable file, empty text,
	// cancelled run).
	SkipReason string
}
