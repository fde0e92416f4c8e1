// Package pdf extracts plain text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TextReader = (*Reader)(nil)

// Reader handles PDF documents using ledongthuc/pdf.
type Reader struct{}

// New creates a new PDF reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{"pdf"}
}

// Extract returns the PDF's plain text content.
func (r *Reader) Extract(_ context.Context, path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	plain, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
