// Package enrich computes semantic chunk metadata through an LLM.
//
// Enrichment is optional and off by default: the pipeline only
// constructs an Enricher when a credential is configured, so without one
// the LLM boundary is never invoked at all.
//
// Failure policy is "fail loud into the data": a failed sub-request
// degrades its single field to a recognisable error marker and never
// aborts the surrounding pipeline.
package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Default request bounds.
const (
	// DefaultMaxChars caps the chunk text sent to the LLM.
	DefaultMaxChars = 4000

	// DefaultTimeout bounds each enrichment sub-request.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the sustained request rate across all
	// workers. Exceeding it queues callers, it never fails them.
	DefaultRequestsPerSecond = 2.0

	// DefaultBurst is the rate limiter burst size.
	DefaultBurst = 3
)

// enrichTemperature favours determinism over creativity.
const enrichTemperature = 0.2

// systemPrompt is sent with every enrichment request.
const systemPrompt = "Be precise and concise."

// Per-field output budgets.
const (
	summaryMaxTokens  = 128
	keywordsMaxTokens = 64
	sectionMaxTokens  = 32
)

// Prompts for the three independent sub-requests.
const (
	summaryPrompt  = "Summarize the following document chunk in 1-2 sentences:\n\n"
	keywordsPrompt = "Extract 5-10 keywords or topics from the following document chunk:\n\n"
	sectionPrompt  = "If this chunk is part of a chapter or section, provide the likely section or chapter title. If not, say 'None'.\n\n"
)

// Enricher generates summary, keyword and section metadata for chunks.
type Enricher struct {
	llm      driven.LLMService
	limiter  *rate.Limiter
	timeout  time.Duration
	maxChars int
}

// Option configures the enricher.
type Option func(*Enricher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithRateLimit sets the sustained request rate and burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(e *Enricher) {
		if rps > 0 && burst > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithMaxChars sets the chunk character budget.
func WithMaxChars(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.maxChars = n
		}
	}
}

// New creates an enricher over the given LLM service.
// The service is required: enrichment without a configured credential
// must not be constructed, not constructed-then-failed.
func New(llm driven.LLMService, opts ...Option) (*Enricher, error) {
	if llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	e := &Enricher{
		llm:      llm,
		limiter:  rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultBurst),
		timeout:  DefaultTimeout,
		maxChars: DefaultMaxChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Enrich generates the three semantic fields for one chunk. The three
// sub-requests are independent and run concurrently; a failure in one
// degrades only its own field. fullText is accepted for future
// context-aware prompts and is currently unused.
func (e *Enricher) Enrich(ctx context.Context, chunkText, _ string) *domain.EnrichmentResult {
	cleaned := Sanitise(Truncate(chunkText, e.maxChars))

	result := &domain.EnrichmentResult{}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Summary = e.request(ctx, summaryPrompt+cleaned, summaryMaxTokens)
	}()
	go func() {
		defer wg.Done()
		result.Keywords = e.request(ctx, keywordsPrompt+cleaned, keywordsMaxTokens)
	}()
	go func() {
		defer wg.Done()
		result.Section = e.request(ctx, sectionPrompt+cleaned, sectionMaxTokens)
	}()

	wg.Wait()
	return result
}

// request performs one rate-limited, timeout-bounded sub-request.
// Any failure is converted into a degradation marker value.
func (e *Enricher) request(ctx context.Context, prompt string, maxTokens int) string {
	if err := e.limiter.Wait(ctx); err != nil {
		return domain.DegradedValue(err.Error())
	}

	reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.llm.Generate(reqCtx, prompt, driven.GenerateOptions{
		SystemPrompt: systemPrompt,
		MaxTokens:    maxTokens,
		Temperature:  enrichTemperature,
	})
	if err != nil {
		var httpErr *driven.HTTPError
		if errors.As(err, &httpErr) {
			return domain.DegradedHTTPValue(httpErr.Error())
		}
		return domain.DegradedValue(err.Error())
	}
	return strings.TrimSpace(text)
}

// ToMetadata renders an enrichment result as a metadata mapping, ready
// to merge behind the deterministic fields.
func ToMetadata(result *domain.EnrichmentResult) *domain.Metadata {
	meta := domain.NewMetadata()
	meta.Set(domain.KeyLLMSummary, result.Summary)
	meta.Set(domain.KeyLLMKeywords, result.Keywords)
	meta.Set(domain.KeyLLMSection, result.Section)
	return meta
}

// DegradedCount returns how many fields of a result are degradation
// markers.
func DegradedCount(result *domain.EnrichmentResult) int {
	count := 0
	for _, v := range []string{result.Summary, result.Keywords, result.Section} {
		if domain.IsDegraded(v) {
			count++
		}
	}
	return count
}

// Truncate caps text at maxChars characters for LLM API input limits.
func Truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}

// Sanitise strips characters outside TAB, LF, CR and printable ASCII.
// Control bytes in extracted text cause transport errors on some
// completion APIs.
func Sanitise(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		}
	}
	return b.String()
}
