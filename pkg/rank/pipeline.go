// Package rank orchestrates a ranked vocabulary search: one registry
// keyword query, two concurrent metadata queries, then merge, score,
// and order. A failure at any stage degrades the result rather than
// failing the search; callers always get a usable (possibly empty)
// ranking.
package rank

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/sparql"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// Querier is the registry surface the pipeline depends on. It is
// implemented by *registry.Client.
type Querier interface {
	Search(ctx context.Context, term string) ([]vocab.VocabularyEntry, error)
	QueryBindings(ctx context.Context, query string) ([]sparql.Binding, error)
}

// Result is the outcome of one pipeline run. Degraded is set when any
// upstream fetch failed and defaults were substituted.
type Result struct {
	Term     string
	Entries  []vocab.RankedEntry
	Degraded bool
	Duration time.Duration
}

// Pipeline wires the registry, the metadata queries, and the scoring
// engine into a single ranked-search operation.
type Pipeline struct {
	querier Querier
	engine  *scoring.Engine
}

// New creates a Pipeline backed by the default scoring engine.
func New(querier Querier) *Pipeline {
	return &Pipeline{
		querier: querier,
		engine:  scoring.DefaultEngine(),
	}
}

// Run executes a full ranked search for term. Upstream failures are
// logged and degrade the result to whatever could still be computed;
// the returned error is non-nil only when the pipeline itself breaks.
func (p *Pipeline) Run(ctx context.Context, term string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("search pipeline panicked for %q: %v", term, r)
			res = nil
			err = errors.New("search failed")
		}
	}()

	start := time.Now()
	term = strings.TrimSpace(term)
	res = &Result{Term: term}
	if term == "" {
		res.Duration = time.Since(start)
		return res, nil
	}

	// 1. Keyword search against the registry.
	entries, searchErr := p.querier.Search(ctx, term)
	if searchErr != nil {
		log.Printf("registry search for %q failed: %v", term, searchErr)
		res.Degraded = true
		res.Duration = time.Since(start)
		return res, nil
	}
	if len(entries) == 0 {
		res.Duration = time.Since(start)
		return res, nil
	}

	// 2. Fetch adoption and design metadata concurrently.
	adoption, design, degraded := p.fetchMetadata(ctx, entries)
	res.Degraded = degraded

	// 3. Merge, score, and order. Ties keep registry order.
	ranked := vocab.Merge(entries, adoption, design)
	for i := range ranked {
		ranked[i].ConnectivityScore = p.engine.Evaluate(ranked[i].Adoption, ranked[i].Design).Score
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConnectivityScore > ranked[j].ConnectivityScore
	})

	res.Entries = ranked
	res.Duration = time.Since(start)
	return res, nil
}

// fetchMetadata runs the adoption and design queries in parallel. Each
// query degrades to nil on failure so one failing endpoint never blanks
// out the other's metrics.
func (p *Pipeline) fetchMetadata(ctx context.Context, entries []vocab.VocabularyEntry) (map[string]vocab.AdoptionMetrics, map[string]vocab.DesignMetrics, bool) {
	uris := vocab.CollectURIs(entries)
	if len(uris) == 0 {
		return nil, nil, false
	}

	var (
		adoption       map[string]vocab.AdoptionMetrics
		design         map[string]vocab.DesignMetrics
		adoptionFailed bool
		designFailed   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bindings, err := p.querier.QueryBindings(gctx, sparql.AdoptionQuery(uris))
		if err != nil {
			log.Printf("adoption metadata query failed: %v", err)
			adoptionFailed = true
			return nil
		}
		adoption = sparql.AdoptionFromBindings(bindings)
		return nil
	})
	g.Go(func() error {
		bindings, err := p.querier.QueryBindings(gctx, sparql.DesignQuery(uris))
		if err != nil {
			log.Printf("design metadata query failed: %v", err)
			designFailed = true
			return nil
		}
		design = sparql.DesignFromBindings(bindings)
		return nil
	})
	// Goroutines degrade instead of returning errors, so Wait only
	// synchronizes.
	_ = g.Wait()

	return adoption, design, adoptionFailed || designFailed
}
