// Command vocascoped is the Vocascope platform service.
// It serves the ranked vocabulary search API, the audit history and
// export endpoints, Prometheus metrics, and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/vocascope/vocascope/internal/api"
	"github.com/vocascope/vocascope/internal/export"
	"github.com/vocascope/vocascope/internal/history"
	"github.com/vocascope/vocascope/internal/platform"
	"github.com/vocascope/vocascope/pkg/rank"
	"github.com/vocascope/vocascope/pkg/registry"
)

type config struct {
	Port        string
	DatabaseURL string
	SearchURL   string
	SPARQLURL   string
	RegistryID  string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/vocascope?sslmode=disable"),
		SearchURL:   envOrDefault("LOV_SEARCH_URL", registry.DefaultSearchURL),
		SPARQLURL:   envOrDefault("LOV_SPARQL_URL", registry.DefaultSPARQLURL),
		RegistryID:  envOrDefault("REGISTRY_ID", "lov"),
	}
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if version, dirty, err := platform.SchemaVersion(db); err != nil {
		log.Printf("schema version: %v", err)
	} else {
		log.Printf("database schema at version %d (dirty=%v)", version, dirty)
	}

	// Initialize services
	client := registry.NewClient(registry.Config{
		SearchURL: cfg.SearchURL,
		SPARQLURL: cfg.SPARQLURL,
	})
	pipeline := rank.New(client)

	historySvc := history.NewService(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := export.NewStorageFromEnv(ctx)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	exportSvc := export.NewService(pipeline, storage, historySvc, cfg.RegistryID)

	handler := api.NewHandler(pipeline, historySvc, exportSvc, nil)

	// Set up HTTP routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	go func() {
		log.Printf("starting vocascoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
