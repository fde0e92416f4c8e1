package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// fakeLLM answers by prompt prefix so each sub-request is recognisable.
type fakeLLM struct {
	failSummary  error
	failKeywords error
	failSection  error
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	switch {
	case strings.HasPrefix(prompt, summaryPrompt):
		if f.failSummary != nil {
			return "", f.failSummary
		}
		return "a short summary", nil
	case strings.HasPrefix(prompt, keywordsPrompt):
		if f.failKeywords != nil {
			return "", f.failKeywords
		}
		return "chunking, metadata", nil
	case strings.HasPrefix(prompt, sectionPrompt):
		if f.failSection != nil {
			return "", f.failSection
		}
		return domain.SectionNone, nil
	}
	return "", errors.New("unexpected prompt")
}

func (f *fakeLLM) ModelName() string            { return "fake" }
func (f *fakeLLM) Ping(_ context.Context) error { return nil }
func (f *fakeLLM) Close() error                 { return nil }

func newTestEnricher(t *testing.T, llm driven.LLMService) *Enricher {
	t.Helper()
	e, err := New(llm, WithRateLimit(1000, 10), WithTimeout(time.Second))
	require.NoError(t, err)
	return e
}

func TestNew_RequiresLLM(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestEnrich_AllFieldsSucceed(t *testing.T) {
	e := newTestEnricher(t, &fakeLLM{})
	result := e.Enrich(context.Background(), "chunk text", "full text")

	assert.Equal(t, "a short summary", result.Summary)
	assert.Equal(t, "chunking, metadata", result.Keywords)
	assert.Equal(t, domain.SectionNone, result.Section)
	assert.Equal(t, 0, DegradedCount(result))
}

func TestEnrich_SingleFailureDegradesSingleField(t *testing.T) {
	e := newTestEnricher(t, &fakeLLM{failKeywords: errors.New("connection reset")})
	result := e.Enrich(context.Background(), "chunk text", "")

	assert.Equal(t, "a short summary", result.Summary)
	assert.True(t, domain.IsDegraded(result.Keywords))
	assert.Contains(t, result.Keywords, "connection reset")
	assert.Equal(t, domain.SectionNone, result.Section)
	assert.Equal(t, 1, DegradedCount(result))
}

func TestEnrich_HTTPFailureUsesHTTPMarker(t *testing.T) {
	httpErr := &driven.HTTPError{StatusCode: 500, Body: "oops"}
	e := newTestEnricher(t, &fakeLLM{failSummary: httpErr})
	result := e.Enrich(context.Background(), "chunk text", "")

	assert.True(t, domain.IsDegraded(result.Summary))
	assert.True(t, strings.HasPrefix(result.Summary, "[LLM HTTP error:"))
	assert.Contains(t, result.Summary, "500")
}

func TestEnrich_AllFail(t *testing.T) {
	err := errors.New("down")
	e := newTestEnricher(t, &fakeLLM{failSummary: err, failKeywords: err, failSection: err})
	result := e.Enrich(context.Background(), "chunk text", "")

	assert.Equal(t, 3, DegradedCount(result))
}

func TestToMetadata(t *testing.T) {
	meta := ToMetadata(&domain.EnrichmentResult{
		Summary:  "s",
		Keywords: "k",
		Section:  domain.SectionNone,
	})

	assert.Equal(t, []string{
		domain.KeyLLMSummary,
		domain.KeyLLMKeywords,
		domain.KeyLLMSection,
	}, meta.Keys())
	assert.Equal(t, domain.SectionNone, meta.GetString(domain.KeyLLMSection))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abcd", Truncate("abcd", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
}

func TestSanitise(t *testing.T) {
	in := "keep\tthis\nline\r\x00\x07 and ascii; drop é世"
	out := Sanitise(in)

	assert.Equal(t, "keep\tthis\nline\r and ascii; drop ", out)
}

// recordingLLM captures prompts to assert the input bounding.
// Sub-requests run concurrently, so access is locked.
type recordingLLM struct {
	mu      sync.Mutex
	prompts []string
}

func (r *recordingLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return "ok", nil
}
func (r *recordingLLM) ModelName() string            { return "rec" }
func (r *recordingLLM) Ping(_ context.Context) error { return nil }
func (r *recordingLLM) Close() error                 { return nil }

func TestEnrich_TruncatesAndSanitisesInput(t *testing.T) {
	rec := &recordingLLM{}
	e, err := New(rec, WithRateLimit(1000, 10), WithMaxChars(20))
	require.NoError(t, err)

	long := strings.Repeat("x", 50) + "\x01"
	e.Enrich(context.Background(), long, "")

	require.Len(t, rec.prompts, 3)
	for _, p := range rec.prompts {
		assert.NotContains(t, p, "\x01")
		// Prompt = instruction + bounded chunk.
		assert.LessOrEqual(t, strings.Count(p, "x"), 20)
	}
}
