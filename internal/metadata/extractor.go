// Package metadata computes deterministic, content-derived metadata for
// documents and chunks.
//
// Every field except processing_time is a pure function of the document
// bytes/stat and the chunk text. processing_time is the wall clock at
// extraction and is documented as non-deterministic across runs.
package metadata

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
)

// maxKeywords is the number of heuristic keywords attached per chunk.
const maxKeywords = 5

// minKeywordLen is the minimum length of a keyword candidate.
const minKeywordLen = 5

// Extractor computes metadata for documents and chunks.
type Extractor struct {
	// now is swappable for deterministic tests.
	now func() time.Time
}

// New creates a metadata extractor.
func New() *Extractor {
	return &Extractor{now: time.Now}
}

// DescribeFile reads a file's bytes and stat and returns its
// SourceDocument. The hash is the hex MD5 of the bytes: identical bytes
// always produce an identical hash.
func (e *Extractor) DescribeFile(path string) (*domain.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	sum := md5.Sum(data) //nolint:gosec

	name := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(name), ".")

	return &domain.SourceDocument{
		Path:      path,
		Stem:      strings.TrimSuffix(name, filepath.Ext(name)),
		Extension: strings.ToLower(ext),
		Size:      info.Size(),
		Hash:      hex.EncodeToString(sum[:]),
		// Go's portable stat has no birth time; modification time is
		// the documented fallback.
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// ForChunk builds the deterministic metadata mapping for one chunk.
// Fields appear in the canonical insertion order; heuristic fields are
// set only on positive detection. userTags, when non-empty, are stored
// under user_tags as "k=v" pairs sorted by key.
func (e *Extractor) ForChunk(chunk *domain.Chunk, userTags map[string]string) *domain.Metadata {
	doc := chunk.Doc
	meta := domain.NewMetadata()
	meta.Set(domain.KeyFileHash, doc.Hash)
	meta.Set(domain.KeyOriginalSize, doc.Size)
	meta.Set(domain.KeyCreatedDate, doc.CreatedAt.Format(time.RFC3339))
	meta.Set(domain.KeyModifiedDate, doc.ModifiedAt.Format(time.RFC3339))
	meta.Set(domain.KeyProcessingTime, e.now().Format(time.RFC3339))
	meta.Set(domain.KeyChunkNumber, chunk.Number)
	meta.Set(domain.KeyTotalChunks, chunk.Total)
	meta.Set(domain.KeyWordCount, len(strings.Fields(chunk.Text)))
	meta.Set(domain.KeyDocumentType, doc.Extension)

	if heading := ExtractHeading(chunk.Text); heading != "" {
		meta.Set(domain.KeySectionHeading, heading)
	}
	if keywords := ExtractKeywords(chunk.Text); keywords != "" {
		meta.Set(domain.KeyKeywords, keywords)
	}

	lines := nonBlankLines(chunk.Text)
	if len(lines) > 0 {
		meta.Set(domain.KeyFirstLine, lines[0])
		meta.Set(domain.KeyLastLine, lines[len(lines)-1])
	}

	if len(userTags) > 0 {
		meta.Set(domain.KeyUserTags, formatTags(userTags))
	}

	return meta
}

// ExtractHeading classifies the first non-blank line of text as a
// heading candidate. A positive classification requires the line to be
// entirely uppercase, or a title-case word sequence (each word
// capitalised, letters only, space separated). Returns "" otherwise.
func ExtractHeading(text string) string {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]

	if isAllUpper(first) || isTitleCase(first) {
		return first
	}
	return ""
}

// ExtractKeywords extracts alphabetic runs of length 5+ from the
// lower-cased text, counts occurrences, and joins the top 5 by
// descending frequency as a comma-separated string.
//
// Ties are broken by first occurrence order. The original heuristic
// leaves the tie-break unspecified; first occurrence keeps output
// reproducible without depending on map iteration.
func ExtractKeywords(text string) string {
	type candidate struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*candidate)
	var order []*candidate

	var run []rune
	pos := 0
	flush := func() {
		if len(run) >= minKeywordLen {
			word := string(run)
			if c, ok := counts[word]; ok {
				c.count++
			} else {
				c := &candidate{word: word, count: 1, first: pos}
				counts[word] = c
				order = append(order, c)
			}
			pos++
		}
		run = run[:0]
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()

	if len(order) == 0 {
		return ""
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	n := len(order)
	if n > maxKeywords {
		n = maxKeywords
	}
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = order[i].word
	}
	return strings.Join(words, ", ")
}

// nonBlankLines returns the trimmed non-blank lines of text in order.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// isAllUpper reports whether the line contains at least one letter and
// no lowercase letters.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether the line is a sequence of capitalised,
// letters-only words separated by single spaces.
func isTitleCase(line string) bool {
	words := strings.Split(line, " ")
	for _, word := range words {
		runes := []rune(word)
		if len(runes) < 2 {
			return false
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return len(words) > 0
}

// formatTags renders user tags as "k=v" pairs sorted by key, so the
// user_tags value is deterministic.
func formatTags(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + tags[k]
	}
	return strings.Join(pairs, ", ")
}
