// Package registry talks to a LOV-style vocabulary registry: keyword
// search over the catalogue and SPARQL queries over its metadata graph.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vocascope/vocascope/pkg/sparql"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// Public LOV registry endpoints, the defaults for every surface.
const (
	DefaultSearchURL = "https://lov.linkeddata.es/dataset/lov/api/v2/vocabulary/search"
	DefaultSPARQLURL = "https://lov.linkeddata.es/dataset/lov/sparql"
)

// Config holds the endpoints and transport for a registry client.
type Config struct {
	SearchURL  string
	SPARQLURL  string
	HTTPClient *http.Client
	// Limiter throttles outbound calls when set. Nil means no
	// throttling, matching the registry's best-effort contract.
	Limiter *rate.Limiter
}

// DefaultConfig returns a config pointing at the public LOV registry.
func DefaultConfig() Config {
	return Config{
		SearchURL: DefaultSearchURL,
		SPARQLURL: DefaultSPARQLURL,
	}
}

// Client executes keyword searches and graph queries against one
// registry. Stateless; safe for concurrent use. Calls are single
// attempt with no retries.
type Client struct {
	searchURL  string
	sparqlURL  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client, filling defaults for any unset field.
func NewClient(cfg Config) *Client {
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.SPARQLURL == "" {
		cfg.SPARQLURL = DefaultSPARQLURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		searchURL:  cfg.SearchURL,
		sparqlURL:  cfg.SPARQLURL,
		httpClient: cfg.HTTPClient,
		limiter:    cfg.Limiter,
	}
}

// Search runs a keyword search against the registry. An empty or
// whitespace-only term returns no entries without a network call.
func (c *Client) Search(ctx context.Context, term string) ([]vocab.VocabularyEntry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.searchURL + "?q=" + url.QueryEscape(term)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("registry search error %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	entries := make([]vocab.VocabularyEntry, 0, len(envelope.Results))
	for _, raw := range envelope.Results {
		entries = append(entries, parseSearchRow(raw))
	}
	return entries, nil
}

// QueryBindings runs a SPARQL query against the registry's graph
// endpoint and returns the raw result bindings. An empty query returns
// no bindings without a network call.
func (c *Client) QueryBindings(ctx context.Context, query string) ([]sparql.Binding, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.sparqlURL + "?query=" + url.QueryEscape(query) + "&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create graph request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query graph endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("graph query error %d: %s", resp.StatusCode, string(respBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read graph response: %w", err)
	}
	return sparql.ParseResults(body)
}

// wait blocks on the politeness limiter when one is configured.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// parseSearchRow extracts one entry from a search result row. Rows
// vary across registry versions: values may be plain strings,
// single-element arrays, or {"value": ...} objects, and descriptive
// fields may sit under namespaced keys.
func parseSearchRow(raw json.RawMessage) vocab.VocabularyEntry {
	var row map[string]interface{}
	if err := json.Unmarshal(raw, &row); err != nil {
		return vocab.VocabularyEntry{}
	}

	return vocab.VocabularyEntry{
		URI:         stringField(row, "uri"),
		Prefix:      stringField(row, "prefix", "prefixedName"),
		Title:       stringField(row, "title", "titles", "dcterms:title"),
		Description: stringField(row, "description", "descriptions", "dcterms:description"),
		Homepage:    stringField(row, "homepage", "foaf:homepage"),
	}
}

// stringField returns the first usable string found under any of the
// given keys.
func stringField(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := asString(row[key]); s != "" {
			return s
		}
	}
	return ""
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		for _, item := range val {
			if s := asString(item); s != "" {
				return s
			}
		}
	case map[string]interface{}:
		if s, ok := val["value"].(string); ok {
			return s
		}
	}
	return ""
}
