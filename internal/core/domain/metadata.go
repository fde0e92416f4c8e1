package domain

import "fmt"

// Canonical metadata keys. Every compliant formatter and consumer must
// recognise this set; arbitrary keys outside it belong in KeyUserTags.
const (
	KeyFileHash       = "file_hash"
	KeyOriginalSize   = "original_size"
	KeyCreatedDate    = "created_date"
	KeyModifiedDate   = "modified_date"
	KeyProcessingTime = "processing_time"
	KeyChunkNumber    = "chunk_number"
	KeyTotalChunks    = "total_chunks"
	KeyWordCount      = "word_count"
	KeyDocumentType   = "document_type"
	KeySummary        = "summary"
	KeyKeywords       = "keywords"
	KeyUserTags       = "user_tags"

	// Heuristic fields, present only on positive detection.
	KeySectionHeading = "section_heading"
	KeyFirstLine      = "first_line"
	KeyLastLine       = "last_line"

	// Enrichment fields, present only when enrichment ran.
	KeyLLMSummary  = "llm_summary"
	KeyLLMKeywords = "llm_keywords"
	KeyLLMSection  = "llm_section"
)

// Metadata is an insertion-ordered mapping from field name to scalar value.
// Formatters emit fields in the order they were set, so extraction code
// controls the artifact's field order deterministically.
//
// The zero value is not usable; create with NewMetadata.
type Metadata struct {
	keys   []string
	values map[string]any
}

// NewMetadata creates an empty metadata mapping.
func NewMetadata() *Metadata {
	return &Metadata{
		values: make(map[string]any),
	}
}

// Set assigns a value to a key. Setting an existing key updates the value
// in place without changing its position.
func (m *Metadata) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for a key and whether it is present.
func (m *Metadata) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetString returns a key's value coerced to its display string.
// Non-string values are lossily stringified.
func (m *Metadata) GetString(key string) string {
	v, ok := m.values[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Has returns true if the key is present.
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the field names in insertion order.
// The returned slice must not be modified.
func (m *Metadata) Keys() []string {
	return m.keys
}

// Len returns the number of fields.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Merge appends fields from other that are not already present.
// Existing fields are never overwritten, so enrichment output cannot
// clobber deterministic fields.
func (m *Metadata) Merge(other *Metadata) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		if _, ok := m.values[key]; ok {
			continue
		}
		m.Set(key, other.values[key])
	}
}
