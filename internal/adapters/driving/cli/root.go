// Package cli implements the driving command-line adapter.
//
// Commands are package-level cobra vars registered in init(); wiring of
// driven adapters (config store, LLM service) happens in Execute so
// tests can run commands against substitutes.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	configfile "github.com/docprep-labs/ragprep-cli/internal/adapters/driven/config/file"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
	"github.com/docprep-labs/ragprep-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// configStore is injected in Execute; commands treat nil as "no
// persisted configuration".
var configStore driven.ConfigStore

var rootCmd = &cobra.Command{
	Use:   "ragprep",
	Short: "Prepare documents for retrieval-augmented generation",
	Long: `ragprep chunks documents, attaches content-derived metadata,
optionally enriches chunks through an LLM, and writes one formatted
artifact per chunk.

Supported inputs: txt, md, pdf, docx, pptx.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output on stderr")
}

// Execute wires the driven adapters and runs the root command.
func Execute() error {
	// A missing .env is the common case, not an error.
	_ = godotenv.Load()

	store, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("Config unavailable: %v", err)
	} else {
		configStore = store
	}

	return rootCmd.Execute()
}
