package chunkers

import (
	"strings"
	"unicode"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Semantic implements the interface.
var _ driven.ChunkStrategy = (*Semantic)(nil)

// Semantic groups consecutive paragraphs that share significant
// vocabulary into one chunk, up to size words per chunk.
//
// Coherence is judged by overlap of significant terms (alphabetic runs
// of five or more characters, lower-cased) between a paragraph and the
// running chunk. The policy is deterministic: same input, same chunks.
// A paragraph is never split across chunks.
type Semantic struct{}

// NewSemantic creates the semantic-grouping strategy.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the strategy name.
func (s *Semantic) Name() string {
	return "semantic"
}

// Chunk groups topically coherent paragraphs into word-bounded chunks,
// preserving paragraph order.
func (s *Semantic) Chunk(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		return nil, nil
	}

	var chunks []string
	var current []string
	currentWords := 0
	currentTerms := map[string]struct{}{}

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = nil
			currentWords = 0
			currentTerms = map[string]struct{}{}
		}
	}

	for _, para := range paragraphs {
		paraWords := len(strings.Fields(para))
		paraTerms := significantTerms(para)

		overBudget := len(current) > 0 && currentWords+paraWords > size
		// A paragraph with no term overlap starts a new topic group.
		// Paragraphs without significant terms stay with the current
		// group rather than forcing a break.
		topicBreak := len(current) > 0 && len(paraTerms) > 0 &&
			len(currentTerms) > 0 && !overlaps(currentTerms, paraTerms)

		if overBudget || topicBreak {
			flush()
		}

		current = append(current, para)
		currentWords += paraWords
		for term := range paraTerms {
			currentTerms[term] = struct{}{}
		}
	}
	flush()

	return chunks, nil
}

// significantTerms extracts the lower-cased alphabetic runs of length 5+
// from text. Short words carry too little topical signal to compare.
func significantTerms(text string) map[string]struct{} {
	terms := make(map[string]struct{})
	var run []rune

	flush := func() {
		if len(run) >= 5 {
			terms[string(run)] = struct{}{}
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

	return terms
}

func overlaps(a, b map[string]struct{}) bool {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for term := range small {
		if _, ok := large[term]; ok {
			return true
		}
	}
	return false
}
