// Package config handles loading and managing Vocascope configuration.
package config

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/vocascope/vocascope/pkg/registry"
)

// ConfigFileName is what FindConfigFile walks the tree for.
const ConfigFileName = ".vocascope.yml"

// Config is the top-level configuration for Vocascope.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Output   OutputConfig   `yaml:"output"`
	Cache    CacheConfig    `yaml:"cache"`
}

// RegistryConfig controls which registry is queried and how politely.
type RegistryConfig struct {
	SearchURL  string  `yaml:"search_url"`
	SPARQLURL  string  `yaml:"sparql_url"`
	Timeout    int     `yaml:"timeout"` // seconds
	RatePerSec float64 `yaml:"rate_per_sec"`
	RateBurst  int     `yaml:"rate_burst"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // "table", "json", or "markdown"
	Color  string `yaml:"color"`  // "auto", "always", "never"
	Limit  int    `yaml:"limit"`  // entries rendered; 0 shows all
}

// CacheConfig controls where rankings are kept between runs.
type CacheConfig struct {
	Dir string `yaml:"dir"` // empty means the per-registry default
}

// DefaultConfig returns a Config pointing at the public LOV registry.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			SearchURL:  registry.DefaultSearchURL,
			SPARQLURL:  registry.DefaultSPARQLURL,
			Timeout:    30,
			RatePerSec: 2,
			RateBurst:  4,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ClientConfig translates the registry section into a client config.
// A zero rate disables throttling.
func (c *Config) ClientConfig() registry.Config {
	rc := registry.Config{
		SearchURL: c.Registry.SearchURL,
		SPARQLURL: c.Registry.SPARQLURL,
	}
	if c.Registry.Timeout > 0 {
		rc.HTTPClient = &http.Client{Timeout: time.Duration(c.Registry.Timeout) * time.Second}
	}
	if c.Registry.RatePerSec > 0 {
		burst := c.Registry.RateBurst
		if burst < 1 {
			burst = 1
		}
		rc.Limiter = rate.NewLimiter(rate.Limit(c.Registry.RatePerSec), burst)
	}
	return rc
}

// FindConfigFile looks for .vocascope.yml in the given directory and
// its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the ranking cache directory. Rankings are cached
// per registry so switching endpoints never mixes results.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "vocascope", registrySlug(c.Registry.SearchURL))
}

// RankingsDir returns where ranking snapshots are stored.
func (c *Config) RankingsDir() string {
	return filepath.Join(c.CacheDir(), "rankings")
}

// DeltasDir returns where ranking deltas are stored.
func (c *Config) DeltasDir() string {
	return filepath.Join(c.CacheDir(), "deltas")
}

// registrySlug creates a filesystem-safe identifier from a registry
// endpoint, usually the host name.
func registrySlug(endpoint string) string {
	name := endpoint
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		name = u.Host
	}
	slug := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			slug = append(slug, r)
		default:
			slug = append(slug, '_')
		}
	}
	if len(slug) == 0 {
		return "default"
	}
	return string(slug)
}
