package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/docprep-labs/ragprep-cli/internal/chunkers"
	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driving"
	"github.com/docprep-labs/ragprep-cli/internal/enrich"
	"github.com/docprep-labs/ragprep-cli/internal/formatters"
	"github.com/docprep-labs/ragprep-cli/internal/logger"
	"github.com/docprep-labs/ragprep-cli/internal/metadata"
	"github.com/docprep-labs/ragprep-cli/internal/readers"
)

// DefaultWorkers bounds document-level concurrency when the caller does
// not choose a pool size.
const DefaultWorkers = 4

// Ensure Processor implements the interface.
var _ driving.DocumentProcessor = (*Processor)(nil)

// Processor runs the chunking pipeline: read, chunk, per-chunk metadata
// and optional enrichment, format, write.
//
// Documents are independent units with no shared mutable state; they run
// on a bounded worker pool and merge their results under a lock.
type Processor struct {
	registry  *readers.Registry
	extractor *metadata.Extractor
	enricher  *enrich.Enricher
	workspace *Workspace
}

// NewProcessor creates a pipeline processor writing into workspace.
// enricher is optional: nil disables enrichment entirely.
func NewProcessor(registry *readers.Registry, enricher *enrich.Enricher, workspace *Workspace) *Processor {
	return &Processor{
		registry:  registry,
		extractor: metadata.New(),
		enricher:  enricher,
		workspace: workspace,
	}
}

// ProcessDirectory runs the pipeline for every supported file in
// opts.InputDir. Configuration is validated before any I/O; a failure in
// one document is recorded as a skip and never affects another.
func (p *Processor) ProcessDirectory(ctx context.Context, opts driving.ProcessOptions) (*driving.Report, error) {
	strategy, formatter, err := p.validate(opts)
	if err != nil {
		return nil, err
	}

	paths, err := p.scan(opts.InputDir)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	report := &driving.Report{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, path := range paths {
		path := path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			result := p.processOne(ctx, path, strategy, formatter, opts)

			mu.Lock()
			defer mu.Unlock()
			report.Documents = append(report.Documents, result)
			if result.Skipped {
				report.Skipped++
			}
			report.ChunksWritten += result.Chunks
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.Documents = append(report.Documents, driving.DocumentResult{
				Path:       path,
				Skipped:    true,
				SkipReason: fmt.Sprintf("submit: %v", submitErr),
			})
			report.Skipped++
			mu.Unlock()
		}
	}
	wg.Wait()

	logger.Info("Processed %d documents: %d chunks written, %d skipped",
		len(report.Documents), report.ChunksWritten, report.Skipped)
	return report, nil
}

// ProcessFile runs the pipeline for a single document.
func (p *Processor) ProcessFile(ctx context.Context, path string, opts driving.ProcessOptions) (*driving.DocumentResult, error) {
	strategy, formatter, err := p.validate(opts)
	if err != nil {
		return nil, err
	}
	result := p.processOne(ctx, path, strategy, formatter, opts)
	return &result, nil
}

// validate rejects invalid configuration before any I/O.
func (p *Processor) validate(opts driving.ProcessOptions) (driven.ChunkStrategy, driven.Formatter, error) {
	if opts.ChunkSize <= 0 {
		return nil, nil, fmt.Errorf("%w: chunk size must be positive, got %d",
			domain.ErrInvalidInput, opts.ChunkSize)
	}
	strategy, err := chunkers.New(opts.Strategy)
	if err != nil {
		return nil, nil, err
	}
	formatter, err := formatters.New(opts.Format)
	if err != nil {
		return nil, nil, err
	}
	if opts.Enrich && p.enricher == nil {
		return nil, nil, fmt.Errorf("%w: enrichment requested but no API key configured",
			domain.ErrLLMUnavailable)
	}
	return strategy, formatter, nil
}

// scan lists the supported files in dir, sorted for stable ordering.
func (p *Processor) scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if p.registry.Supported(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// processOne runs the whole pipeline for one document. All failures are
// folded into the result as a skip; nothing propagates as an error.
func (p *Processor) processOne(
	ctx context.Context,
	path string,
	strategy driven.ChunkStrategy,
	formatter driven.Formatter,
	opts driving.ProcessOptions,
) driving.DocumentResult {
	result := driving.DocumentResult{Path: path}

	logger.Debug("Processing %s", path)

	read := p.registry.Read(ctx, path)
	if read.Failed {
		logger.Warn("Skipping %s: %v", path, read.Err)
		result.Skipped = true
		result.SkipReason = read.Err.Error()
		return result
	}

	doc, err := p.extractor.DescribeFile(path)
	if err != nil {
		logger.Warn("Skipping %s: %v", path, err)
		result.Skipped = true
		result.SkipReason = err.Error()
		return result
	}

	texts, err := strategy.Chunk(read.Text, opts.ChunkSize)
	if err != nil {
		// Configuration is validated up front; a strategy error here
		// still only skips this one document.
		result.Skipped = true
		result.SkipReason = err.Error()
		return result
	}
	if len(texts) == 0 {
		logger.Info("No chunks for %s (empty text)", path)
		result.Skipped = true
		result.SkipReason = "no text content"
		return result
	}

	total := len(texts)
	for i, text := range texts {
		if ctx.Err() != nil {
			// Artifacts already written stay valid; the remainder is
			// reported, not silently dropped.
			result.Skipped = result.Chunks == 0
			result.SkipReason = fmt.Sprintf("cancelled after %d of %d chunks", result.Chunks, total)
			return result
		}

		chunk := &domain.Chunk{
			ID:     uuid.New().String(),
			Doc:    doc,
			Number: i + 1,
			Total:  total,
			Text:   text,
		}

		meta := p.extractor.ForChunk(chunk, opts.UserTags)
		if opts.Enrich {
			enrichment := p.enricher.Enrich(ctx, chunk.Text, read.Text)
			result.Degraded += enrich.DegradedCount(enrichment)
			meta.Merge(enrich.ToMetadata(enrichment))
		}

		artifact, err := formatter.Format(chunk.Text, meta)
		if err != nil {
			result.SkipReason = fmt.Sprintf("format chunk %d: %v", chunk.Number, err)
			result.Skipped = result.Chunks == 0
			return result
		}

		name := fmt.Sprintf("%s_chunk%d.%s", doc.Stem, chunk.Number, formatter.Extension())
		if err := p.workspace.WriteArtifact(name, artifact); err != nil {
			result.SkipReason = fmt.Sprintf("write chunk %d: %v", chunk.Number, err)
			result.Skipped = result.Chunks == 0
			return result
		}

		logger.Debug("Wrote %s", name)
		result.Chunks++
	}

	return result
}
