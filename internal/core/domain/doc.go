// Package domain defines the core business entities for ragprep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: An ingested file with content-derived facts
//   - Chunk: A bounded slice of a document's extracted text
//   - Metadata: An insertion-ordered field mapping for a chunk
//   - EnrichmentResult: Optional LLM-generated semantic fields
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
