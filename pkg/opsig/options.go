package opsig

import "github.com/mapleridge/opsig/internal/engine/matcher"

type options struct {
	catalogPath string
	rulesPath   string
	entries     []CatalogEntry
	rules       []Rule
	threshold   float64
	overrides   map[string][]int
}

// Option configures a Resolver.
type Option func(*options)

// WithCatalogFile loads the catalog from a CSV file (`id,name` header)
// instead of the built-in reference data.
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogPath = path
	}
}

// WithRulesFile loads the multi-ID rule table from a YAML document. Only
// meaningful together with WithCatalogFile.
func WithRulesFile(path string) Option {
	return func(o *options) {
		o.rulesPath = path
	}
}

// WithCatalog supplies the reference data directly. Takes precedence over
// file paths; rules may be nil.
func WithCatalog(entries []CatalogEntry, rules []Rule) Option {
	return func(o *options) {
		o.entries = entries
		o.rules = rules
	}
}

// WithThreshold sets the minimum similarity for fuzzy matches. Below it,
// names stay unresolved. Default: 0.6.
func WithThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithOverrides installs a manual name→IDs mapping consulted before the
// catalog — the retry path after an UnresolvedOperationError.
func WithOverrides(m map[string][]int) Option {
	return func(o *options) {
		o.overrides = m
	}
}

func defaultOptions() options {
	return options{threshold: matcher.DefaultThreshold}
}
