package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vocascope/vocascope/pkg/vocab"
)

func newExportCmd() *cobra.Command {
	var (
		out        string
		searchURL  string
		sparqlURL  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "export <term>",
		Short: "Run a search and save the ranking as a JSON snapshot",
		Long: `Runs the full ranking pipeline and writes the result as a JSON snapshot
for later diffing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), exportOpts{
				term:       strings.Join(args, " "),
				out:        out,
				searchURL:  searchURL,
				sparqlURL:  sparqlURL,
				configPath: configPath,
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default: <cache>/rankings/<id>.json, \"-\" for stdout)")
	cmd.Flags().StringVar(&searchURL, "search-url", "", "Registry keyword search endpoint")
	cmd.Flags().StringVar(&sparqlURL, "sparql-url", "", "Registry SPARQL endpoint")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .vocascope.yml)")

	return cmd
}

type exportOpts struct {
	term       string
	out        string
	searchURL  string
	sparqlURL  string
	configPath string
}

func runExport(ctx context.Context, opts exportOpts) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	pipeline := buildPipeline(cfg, opts.searchURL, opts.sparqlURL)

	res, err := pipeline.Run(ctx, opts.term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if res.Degraded {
		fmt.Fprintf(os.Stderr, "Warning: registry partially unavailable; exporting partial results\n")
	}

	ranking := vocab.NewRanking(res.Term, res.Entries)

	if opts.out == "-" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranking)
	}

	outPath := opts.out
	if outPath == "" {
		outPath = filepath.Join(cfg.RankingsDir(), ranking.ID+".json")
	}

	if err := vocab.SaveRanking(outPath, ranking); err != nil {
		return fmt.Errorf("saving ranking: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ranking saved to %s\n", outPath)
	fmt.Fprintf(os.Stderr, "  Term:    %s\n", ranking.Term)
	fmt.Fprintf(os.Stderr, "  Entries: %d\n", len(ranking.Entries))
	fmt.Fprintf(os.Stderr, "  Top:     %.2f\n", ranking.TopScore())

	return nil
}
