package readers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
	"github.com/docprep-labs/ragprep-cli/internal/readers/docx"
	"github.com/docprep-labs/ragprep-cli/internal/readers/pdf"
	"github.com/docprep-labs/ragprep-cli/internal/readers/plaintext"
	"github.com/docprep-labs/ragprep-cli/internal/readers/pptx"
)

// Registry dispatches file reading to the reader registered for the
// file's extension.
type Registry struct {
	byExt map[string]driven.TextReader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{
		byExt: make(map[string]driven.TextReader),
	}
}

// NewDefaultRegistry creates a registry with all built-in readers:
// plain text, PDF, DOCX and PPTX.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(pptx.New())
	return r
}

// Register adds a reader for each of its extensions.
// A later registration for the same extension wins.
func (r *Registry) Register(reader driven.TextReader) {
	for _, ext := range reader.Extensions() {
		r.byExt[strings.ToLower(ext)] = reader
	}
}

// Supported reports whether a reader is registered for the path's
// extension.
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExt[extOf(path)]
	return ok
}

// Extensions returns all registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read extracts text from the file at path. Errors never escape this
// boundary: an unsupported type or a failing reader yields a ReadResult
// with Failed set, so the caller can skip the document with an accurate
// warning instead of guessing from empty text.
func (r *Registry) Read(ctx context.Context, path string) driven.ReadResult {
	reader, ok := r.byExt[extOf(path)]
	if !ok {
		return driven.ReadResult{
			Failed: true,
			Err:    fmt.Errorf("%w: %s", domain.ErrUnsupportedType, extOf(path)),
		}
	}

	text, err := reader.Extract(ctx, path)
	if err != nil {
		return driven.ReadResult{
			Failed: true,
			Err:    fmt.Errorf("%w: %s", domain.ErrReadFailed, err),
		}
	}
	return driven.ReadResult{Text: text}
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
