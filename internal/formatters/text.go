package formatters

import (
	"fmt"
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// separator delimits the front-matter block above and below.
const separator = "---"

// Ensure Text implements the interface.
var _ driven.Formatter = (*Text)(nil)

// Text renders a chunk as plain text with a front-matter header:
// "key: value" lines in insertion order between separator lines,
// followed by a blank line and the raw chunk text.
type Text struct{}

// NewText creates the plain text formatter.
func NewText() *Text {
	return &Text{}
}

// Name returns the format name.
func (f *Text) Name() string {
	return "txt"
}

// Extension returns the artifact file extension.
func (f *Text) Extension() string {
	return "txt"
}

// Format renders the front-matter block and chunk text.
// Values are coerced to their display string; parsing the block back
// with ParseFrontMatter reproduces the same keys and string values.
// Newlines inside a value (LLM answers are often multi-line) are
// escaped so every front-matter entry stays one physical line.
func (f *Text) Format(chunkText string, meta *domain.Metadata) (string, error) {
	var b strings.Builder
	b.WriteString(separator)
	b.WriteByte('\n')
	for _, key := range meta.Keys() {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(escapeValue(meta.GetString(key)))
		b.WriteByte('\n')
	}
	b.WriteString(separator)
	b.WriteString("\n\n")
	b.WriteString(chunkText)
	b.WriteByte('\n')
	return b.String(), nil
}

// ParseFrontMatter parses an artifact produced by Text.Format back into
// its metadata mapping and chunk text. It exists to make the round-trip
// property testable and to let downstream consumers recover the fields.
func ParseFrontMatter(artifact string) (*domain.Metadata, string, error) {
	lines := strings.Split(artifact, "\n")
	if len(lines) == 0 || lines[0] != separator {
		return nil, "", fmt.Errorf("front matter: missing opening separator")
	}

	meta := domain.NewMetadata()
	i := 1
	for ; i < len(lines); i++ {
		if lines[i] == separator {
			break
		}
		key, value, found := strings.Cut(lines[i], ": ")
		if !found {
			return nil, "", fmt.Errorf("front matter: malformed line %q", lines[i])
		}
		meta.Set(key, unescapeValue(value))
	}
	if i == len(lines) {
		return nil, "", fmt.Errorf("front matter: missing closing separator")
	}

	// Skip the closing separator and the blank line after it.
	body := strings.Join(lines[i+1:], "\n")
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimSuffix(body, "\n")
	return meta, body, nil
}

// valueEscaper keeps a front-matter value on one physical line.
var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

func escapeValue(s string) string {
	return valueEscaper.Replace(s)
}

func unescapeValue(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
