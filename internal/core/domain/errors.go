package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input,
	// such as a non-positive chunk size.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type with no registered reader.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownStrategy indicates an unrecognised chunking strategy name.
	ErrUnknownStrategy = errors.New("unknown chunking strategy")

	// ErrUnknownFormat indicates an unrecognised output format name.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrReadFailed indicates a reader could not produce text.
	// The pipeline recovers by skipping the document with a warning.
	ErrReadFailed = errors.New("read failed")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Enrichment requires an API key; without one it is never invoked.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
