package cli

import (
	"github.com/spf13/cobra"

	"github.com/docprep-labs/ragprep-cli/internal/chunkers"
	"github.com/docprep-labs/ragprep-cli/internal/formatters"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List chunking strategies and artifact formats",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("Chunking strategies:")
		for _, name := range chunkers.Names() {
			if name == chunkers.DefaultStrategy {
				cmd.Printf("  %s (default)\n", name)
				continue
			}
			cmd.Printf("  %s\n", name)
		}

		cmd.Println("Artifact formats:")
		for _, name := range formatters.Names() {
			if name == formatters.DefaultFormat {
				cmd.Printf("  %s (default)\n", name)
				continue
			}
			cmd.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
