package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docprep-labs/ragprep-cli/internal/adapters/driven/llm/perplexity"
	"github.com/docprep-labs/ragprep-cli/internal/chunkers"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driving"
	"github.com/docprep-labs/ragprep-cli/internal/core/services"
	"github.com/docprep-labs/ragprep-cli/internal/enrich"
	"github.com/docprep-labs/ragprep-cli/internal/formatters"
	"github.com/docprep-labs/ragprep-cli/internal/readers"
)

// apiKeyEnv is the environment fallback for the enrichment credential.
const apiKeyEnv = "PPLX_API_KEY"

var (
	processInput     string
	processOutput    string
	processChunkSize int
	processStrategy  string
	processFormat    string
	processEnrich    bool
	processWorkers   int
	processTags      map[string]string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Chunk documents and write metadata-enriched artifacts",
	Long: `Reads every supported document in the input directory, splits each
into chunks, attaches metadata, and writes one artifact per chunk into
the output directory as <stem>_chunk<N>.<ext>.

With --enrich, each chunk additionally receives an LLM-generated
summary, keywords, and section guess. Enrichment needs an API key from
the llm.api_key config value or the PPLX_API_KEY environment variable
(a .env file is honoured). A failed enrichment request degrades that
one field to an error marker; it never fails the run.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processInput, "input", "i", "",
		"directory containing source documents (required)")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "chunks",
		"directory to write chunk artifacts into")
	processCmd.Flags().IntVar(&processChunkSize, "chunk-size", 500,
		"chunk size in words")
	processCmd.Flags().StringVar(&processStrategy, "strategy", chunkers.DefaultStrategy,
		"chunking strategy (see 'ragprep strategies')")
	processCmd.Flags().StringVar(&processFormat, "format", formatters.DefaultFormat,
		"artifact format (see 'ragprep strategies')")
	processCmd.Flags().BoolVar(&processEnrich, "enrich", false,
		"enrich chunks through the configured LLM")
	processCmd.Flags().IntVar(&processWorkers, "workers", services.DefaultWorkers,
		"number of documents processed concurrently")
	processCmd.Flags().StringToStringVar(&processTags, "tag", nil,
		"user tag as key=value, repeatable")
	_ = processCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	enricher, err := buildEnricher(processEnrich)
	if err != nil {
		return err
	}

	workspace, err := services.NewWorkspace(processOutput)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	processor := services.NewProcessor(readers.NewDefaultRegistry(), enricher, workspace)

	report, err := processor.ProcessDirectory(cmd.Context(), driving.ProcessOptions{
		InputDir:  processInput,
		ChunkSize: processChunkSize,
		Strategy:  processStrategy,
		Format:    processFormat,
		Enrich:    processEnrich,
		Workers:   processWorkers,
		UserTags:  processTags,
	})
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

// buildEnricher constructs the LLM enricher when requested. The key is
// read from config first, then the environment; without one the
// processor's own validation reports the failure.
func buildEnricher(enable bool) (*enrich.Enricher, error) {
	if !enable {
		return nil, nil
	}

	apiKey := os.Getenv(apiKeyEnv)
	if configStore != nil {
		if key := configStore.GetString("llm.api_key"); key != "" {
			apiKey = key
		}
	}
	if apiKey == "" {
		return nil, nil
	}

	cfg := perplexity.Config{APIKey: apiKey}
	if configStore != nil {
		if model := configStore.GetString("llm.model"); model != "" {
			cfg.Model = model
		}
		if baseURL := configStore.GetString("llm.base_url"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
	}

	llm, err := perplexity.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("llm service: %w", err)
	}
	return enrich.New(llm)
}

func printReport(cmd *cobra.Command, report *driving.Report) {
	processed := len(report.Documents) - report.Skipped
	cmd.Printf("Processed %d documents (%d skipped), wrote %d chunks to %s\n",
		processed, report.Skipped, report.ChunksWritten, processOutput)

	degraded := 0
	for _, doc := range report.Documents {
		switch {
		case doc.Skipped:
			cmd.Printf("  skipped %s: %s\n", doc.Path, doc.SkipReason)
		case doc.SkipReason != "":
			// Some chunks were written before the document was cut short.
			cmd.Printf("  incomplete %s (%d chunks written): %s\n", doc.Path, doc.Chunks, doc.SkipReason)
		}
		degraded += doc.Degraded
	}
	if degraded > 0 {
		cmd.Printf("  %d enrichment fields degraded to error markers\n", degraded)
	}
}
