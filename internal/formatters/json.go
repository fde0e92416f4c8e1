package formatters

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// contentField is the JSON/CSV field holding the chunk text.
const contentField = "content"

// Ensure JSON implements the interface.
var _ driven.Formatter = (*JSON)(nil)

// JSON renders a chunk as a JSON object: the metadata fields in
// insertion order, then a "content" field with the chunk text.
// encoding/json alone would sort map keys, so the object is assembled
// field by field to keep the mapping's order.
type JSON struct{}

// NewJSON creates the JSON formatter.
func NewJSON() *JSON {
	return &JSON{}
}

// Name returns the format name.
func (f *JSON) Name() string {
	return "json"
}

// Extension returns the artifact file extension.
func (f *JSON) Extension() string {
	return "json"
}

// Format renders the metadata and chunk text as an ordered JSON object.
func (f *JSON) Format(chunkText string, meta *domain.Metadata) (string, error) {
	var b bytes.Buffer
	b.WriteString("{\n")
	for _, key := range meta.Keys() {
		value, _ := meta.Get(key)
		if err := writeField(&b, key, value); err != nil {
			return "", err
		}
		b.WriteString(",\n")
	}
	if err := writeField(&b, contentField, chunkText); err != nil {
		return "", err
	}
	b.WriteString("\n}\n")
	return b.String(), nil
}

func writeField(b *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("marshal key %s: %w", key, err)
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}
	b.WriteString("  ")
	b.Write(k)
	b.WriteString(": ")
	b.Write(v)
	return nil
}
