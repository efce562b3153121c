package opsig

import (
	"fmt"

	"github.com/mapleridge/opsig/internal/engine"
	"github.com/mapleridge/opsig/internal/engine/catalog"
	"github.com/mapleridge/opsig/internal/engine/matcher"
	"github.com/mapleridge/opsig/internal/model"
	"github.com/mapleridge/opsig/internal/refdata"
)

// Resolver resolves operation combinations against one loaded catalog.
// Immutable after New; safe for concurrent use.
type Resolver struct {
	eng *engine.Engine
}

// New creates a Resolver. With no options it uses the built-in reference
// data. Loading and validation happen here, once — reference problems
// surface as ReferenceDataError before any resolution runs.
func New(opts ...Option) (*Resolver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cat, err := buildCatalog(o)
	if err != nil {
		return nil, fmt.Errorf("opsig: %w", err)
	}

	var mopts []matcher.Option
	if len(o.overrides) > 0 {
		mopts = append(mopts, matcher.WithOverrides(o.overrides))
	}
	return &Resolver{eng: engine.New(cat, o.threshold, mopts...)}, nil
}

// Resolve parses the combination, matches every alternative, and returns
// all implied signatures in deterministic order. Unresolved names surface
// as UnresolvedOperationError (or AmbiguousRuleContextError) carrying every
// problem found in one pass.
func (r *Resolver) Resolve(input string) (Resolution, error) {
	return r.eng.Resolve(input)
}

func buildCatalog(o options) (*catalog.Catalog, error) {
	if len(o.entries) > 0 {
		entries := make([]model.Operation, len(o.entries))
		for i, e := range o.entries {
			entries[i] = model.Operation{ID: e.ID, Name: e.Name}
		}
		rules := make([]model.Rule, len(o.rules))
		for i, r := range o.rules {
			rules[i] = model.Rule{Name: r.Name, IDs: r.IDs}
			for _, b := range r.Branches {
				rules[i].Branches = append(rules[i].Branches, model.RuleBranch{Keyword: b.Keyword, IDs: b.IDs})
			}
		}
		return catalog.New(entries, rules)
	}
	if o.catalogPath != "" {
		return refdata.Load(o.catalogPath, o.rulesPath)
	}
	return catalog.New(catalog.DefaultEntries(), catalog.DefaultRules())
}
