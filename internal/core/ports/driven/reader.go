package driven

import "context"

// TextReader extracts plain text from one file format.
// Each reader handles specific file extensions (e.g., pdf, docx).
//
// Readers are "bytes in, text out" black boxes: extraction quality is the
// reader's concern, not the pipeline's. A reader returns an error when it
// cannot produce text; the error never propagates past the reader
// registry, which converts it into an explicit failed result so callers
// can distinguish "genuinely empty" from "read failed".
type TextReader interface {
	// Extensions returns the lower-cased file extensions this reader
	// handles, without leading dots.
	Extensions() []string

	// Extract reads the file at path and returns its plain text.
	Extract(ctx context.Context, path string) (string, error)
}

// ReadResult is the outcome of reading one document through the registry.
// Failed distinguishes a read error from a genuinely empty document, so
// the caller can warn accurately instead of guessing from empty text.
type ReadResult struct {
	// Text is the extracted plain text. Empty when Failed is true.
	Text string

	// Failed is true when the reader could not produce text.
	Failed bool

	// Err is the underlying reader error when Failed is true.
	Err error
}
