package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vocascope/vocascope/internal/api"
	"github.com/vocascope/vocascope/internal/export"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		searchURL  string
		sparqlURL  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a local Vocascope API server",
		Long: `Starts the search API on localhost without a database. Search, export
and ranking endpoints work; history endpoints answer 503.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, searchURL, sparqlURL, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":7700", "Address to serve on")
	cmd.Flags().StringVar(&searchURL, "search-url", "", "Registry keyword search endpoint")
	cmd.Flags().StringVar(&sparqlURL, "sparql-url", "", "Registry SPARQL endpoint")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .vocascope.yml)")

	return cmd
}

func runServe(addr, searchURL, sparqlURL, configPath string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	pipeline := buildPipeline(cfg, searchURL, sparqlURL)

	exportDir := filepath.Join(cfg.CacheDir(), "exports")
	storage := export.NewLocalStorage(exportDir)
	exportSvc := export.NewService(pipeline, storage, nil, "lov")

	handler := api.NewHandler(pipeline, nil, exportSvc, nil)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{\"status\":\"ok\"}\n"))
	})

	fmt.Fprintf(os.Stderr, "Vocascope API server\n")
	fmt.Fprintf(os.Stderr, "  Registry:  %s\n", cfg.Registry.SearchURL)
	fmt.Fprintf(os.Stderr, "  Exports:   %s\n", exportDir)
	fmt.Fprintf(os.Stderr, "  Listening: %s\n", addr)

	return http.ListenAndServe(addr, api.CORS(mux))
}
