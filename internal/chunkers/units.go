package chunkers

import "strings"

// packUnits groups whole boundary units into chunks of up to size words.
// A unit is never split: a single unit exceeding the budget becomes its
// own chunk. Units within a chunk are joined with sep.
func packUnits(units []string, size int, sep string) []string {
	var chunks []string
	var current []string
	currentWords := 0

	for _, unit := range units {
		unitWords := len(strings.Fields(unit))
		if len(current) > 0 && currentWords+unitWords > size {
			chunks = append(chunks, strings.Join(current, sep))
			current = nil
			currentWords = 0
		}
		current = append(current, unit)
		currentWords += unitWords
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, sep))
	}

	return chunks
}

// splitParagraphs splits text on blank-line delimiters, trimming each
// paragraph and dropping empty ones. Line endings are normalised first.
func splitParagraphs(text string) []string {
	normalised := strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, block := range strings.Split(normalised, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// splitSentences splits text into sentences on terminator runs.
// A sentence ends at '.', '!' or '?' followed by whitespace or the end
// of input. Trailing terminators stay attached to their sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume a run of terminators ("...", "?!").
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if i+1 >= len(runes) || isSpace(runes[i+1]) {
			if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
				sentences = append(sentences, trimmed)
			}
			current.Reset()
		}
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		sentences = append(sentences, trimmed)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
