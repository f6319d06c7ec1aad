package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vocascope/vocascope/pkg/config"
	"github.com/vocascope/vocascope/pkg/rank"
	"github.com/vocascope/vocascope/pkg/registry"
	"github.com/vocascope/vocascope/pkg/surface"
	"github.com/vocascope/vocascope/pkg/vocab"
)

func newSearchCmd() *cobra.Command {
	var (
		jsonOut    bool
		limit      int
		noColor    bool
		searchURL  string
		sparqlURL  string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the registry and rank vocabularies by connectivity",
		Long: `Runs a keyword search against the configured registry, enriches the hits
with adoption and design metadata, and renders them ranked by
connectivity score.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), searchOpts{
				term:       strings.Join(args, " "),
				jsonOut:    jsonOut,
				limit:      limit,
				noColor:    noColor,
				searchURL:  searchURL,
				sparqlURL:  sparqlURL,
				configPath: configPath,
				verbose:    verbose,
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the ranking as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to render (0 = config default)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&searchURL, "search-url", "", "Registry keyword search endpoint")
	cmd.Flags().StringVar(&sparqlURL, "sparql-url", "", "Registry SPARQL endpoint")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .vocascope.yml)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log pipeline progress to stderr")

	return cmd
}

type searchOpts struct {
	term       string
	jsonOut    bool
	limit      int
	noColor    bool
	searchURL  string
	sparqlURL  string
	configPath string
	verbose    bool
}

func runSearch(ctx context.Context, opts searchOpts) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.noColor || cfg.Output.Color == "never" {
		os.Setenv("NO_COLOR", "1")
	}

	pipeline := buildPipeline(cfg, opts.searchURL, opts.sparqlURL)

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "Searching %s for %q...\n", cfg.Registry.SearchURL, opts.term)
	}

	res, err := pipeline.Run(ctx, opts.term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if res.Degraded {
		fmt.Fprintf(os.Stderr, "Warning: registry partially unavailable; results may be incomplete\n")
	}
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "Ranked %d vocabularies in %dms\n", len(res.Entries), res.Duration.Milliseconds())
	}

	ranking := vocab.NewRanking(res.Term, res.Entries)

	limit := opts.limit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	var renderer surface.Renderer
	switch {
	case opts.jsonOut || cfg.Output.Format == "json":
		renderer = &surface.JSONRenderer{}
	case cfg.Output.Format == "markdown":
		renderer = &surface.MarkdownRenderer{Limit: limit}
	default:
		renderer = &surface.TerminalRenderer{Limit: limit}
	}

	if err := renderer.Render(os.Stdout, ranking); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return nil
}

// resolveConfig loads an explicit config path, or walks up from the
// working directory looking for one. An explicit path that fails to
// load is an error; a discovered one only warns.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	found := config.FindConfigFile(cwd)
	if found == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(found)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// buildPipeline applies flag overrides to the registry section and
// builds the ranking pipeline.
func buildPipeline(cfg *config.Config, searchURL, sparqlURL string) *rank.Pipeline {
	cfg.Registry.SearchURL = firstNonEmpty(searchURL, cfg.Registry.SearchURL)
	cfg.Registry.SPARQLURL = firstNonEmpty(sparqlURL, cfg.Registry.SPARQLURL)

	client := registry.NewClient(cfg.ClientConfig())
	return rank.New(client)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
