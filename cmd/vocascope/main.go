// Package main provides the vocascope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vocascope",
		Short: "Connectivity-ranked vocabulary search for RDF registries",
		Long: `Vocascope searches a Linked Open Vocabularies registry, enriches the hits
with adoption and design metadata, and ranks them by connectivity.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newSearchCmd(),
		newExportCmd(),
		newDiffCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
