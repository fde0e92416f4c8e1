package formatters

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure CSV implements the interface.
var _ driven.Formatter = (*CSV)(nil)

// CSV renders a chunk as a two-row CSV artifact: a header row with the
// metadata keys in insertion order plus "content", and one record with
// the string-coerced values and the chunk text.
type CSV struct{}

// NewCSV creates the CSV formatter.
func NewCSV() *CSV {
	return &CSV{}
}

// Name returns the format name.
func (f *CSV) Name() string {
	return "csv"
}

// Extension returns the artifact file extension.
func (f *CSV) Extension() string {
	return "csv"
}

// Format renders the header and record rows with RFC 4180 quoting.
func (f *CSV) Format(chunkText string, meta *domain.Metadata) (string, error) {
	header := append([]string{}, meta.Keys()...)
	header = append(header, contentField)

	record := make([]string, 0, len(header))
	for _, key := range meta.Keys() {
		record = append(record, meta.GetString(key))
	}
	record = append(record, chunkText)

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll([][]string{header, record}); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return b.String(), nil
}
