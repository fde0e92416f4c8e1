package domain

import "strings"

// SectionNone is the literal answer the section prompt must give when the
// chunk is not part of any chapter or section.
const SectionNone = "None"

// Degraded-field marker prefixes. When an enrichment sub-request fails,
// the failure detail is embedded in the field value behind one of these
// prefixes so downstream consumers can detect degraded fields without a
// side channel.
const (
	degradedPrefix     = "[LLM error:"
	degradedHTTPPrefix = "[LLM HTTP error:"
)

// EnrichmentResult holds the semantic metadata generated for one chunk.
// A failed sub-request degrades only its own field to a marker string;
// the other fields remain usable.
type EnrichmentResult struct {
	// Summary is a 1-2 sentence summary of the chunk.
	Summary string

	// Keywords is a 5-10 item keyword/topic list.
	Keywords string

	// Section is the likely section or chapter title, or SectionNone.
	Section string
}

// DegradedValue wraps a failure detail in the recognisable marker format.
func DegradedValue(detail string) string {
	return degradedPrefix + " " + detail + "]"
}

// DegradedHTTPValue wraps an HTTP failure detail in the marker format.
func DegradedHTTPValue(detail string) string {
	return degradedHTTPPrefix + " " + detail + "]"
}

// IsDegraded reports whether a field value is a degradation marker
// rather than genuine enrichment output.
func IsDegraded(value string) bool {
	return strings.HasPrefix(value, degradedPrefix) ||
		strings.HasPrefix(value, degradedHTTPPrefix)
}
