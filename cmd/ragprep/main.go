package main

import (
	"os"

	"github.com/docprep-labs/ragprep-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
