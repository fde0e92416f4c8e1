// Package plaintext reads plain text files with encoding fallback.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TextReader = (*Reader)(nil)

// Reader handles plain text documents. Files that are not valid UTF-8
// are decoded as Latin-1, matching the common fallback for legacy text.
type Reader struct{}

// New creates a new plain text reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{"txt", "md", "text"}
}

// Extract reads the file contents as UTF-8, falling back to Latin-1.
func (r *Reader) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return decodeLatin1(data), nil
}

// decodeLatin1 maps each byte to its Unicode code point.
// Latin-1 is a superset interpretation that never fails, mirroring the
// lenient handling expected at the reader boundary.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
