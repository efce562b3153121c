// Package catalog holds the immutable operation reference table: canonical
// name → identifier, plus the supplemental multi-ID rules. Built once at
// startup and never mutated, so it is safe to share across goroutines
// without locking.
package catalog

import (
	"fmt"

	"github.com/mapleridge/opsig/internal/engine/normalize"
	"github.com/mapleridge/opsig/internal/model"
)

// Catalog is the validated in-memory reference table.
type Catalog struct {
	byName map[string]int
	names  []string // insertion order, for deterministic reporting
	rules  map[string]model.Rule
}

// New builds a Catalog from catalog entries and multi-ID rules, rejecting
// malformed data eagerly: empty catalogs, negative identifiers, empty names,
// duplicate names with conflicting identifiers, and rules that declare both
// or neither of a fixed ID set and conditional branches. Names and rule
// keywords are normalized once here so lookups never re-fold.
func New(entries []model.Operation, rules []model.Rule) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog: no entries")
	}

	c := &Catalog{
		byName: make(map[string]int, len(entries)),
		rules:  make(map[string]model.Rule, len(rules)),
	}

	for _, e := range entries {
		name := normalize.Name(e.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: entry with id %d has empty name", e.ID)
		}
		if e.ID < 0 {
			return nil, fmt.Errorf("catalog: entry %q has negative id %d", e.Name, e.ID)
		}
		if prev, ok := c.byName[name]; ok {
			if prev != e.ID {
				return nil, fmt.Errorf("catalog: duplicate name %q with conflicting ids %d and %d", e.Name, prev, e.ID)
			}
			continue // identical duplicate row, collapse
		}
		c.byName[name] = e.ID
		c.names = append(c.names, name)
	}

	for _, r := range rules {
		name := normalize.Name(r.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: rule with empty operation name")
		}
		if len(r.IDs) > 0 && len(r.Branches) > 0 {
			return nil, fmt.Errorf("catalog: rule %q declares both fixed ids and branches", r.Name)
		}
		if len(r.IDs) == 0 && len(r.Branches) == 0 {
			return nil, fmt.Errorf("catalog: rule %q declares no ids", r.Name)
		}
		norm := model.Rule{Name: name, IDs: r.IDs}
		for _, br := range r.Branches {
			kw := normalize.Name(br.Keyword)
			if kw == "" || len(br.IDs) == 0 {
				return nil, fmt.Errorf("catalog: rule %q has a branch with empty keyword or ids", r.Name)
			}
			norm.Branches = append(norm.Branches, model.RuleBranch{Keyword: kw, IDs: br.IDs})
		}
		if _, ok := c.rules[name]; ok {
			return nil, fmt.Errorf("catalog: duplicate rule for %q", r.Name)
		}
		c.rules[name] = norm
	}

	return c, nil
}

// Lookup returns the identifier for a normalized canonical name.
func (c *Catalog) Lookup(name string) (int, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Rule returns the multi-ID rule for a normalized canonical name, if any.
func (c *Catalog) Rule(name string) (model.Rule, bool) {
	r, ok := c.rules[name]
	return r, ok
}

// Names returns all catalog names in load order. The returned slice is
// shared; callers must not mutate it.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of distinct catalog names.
func (c *Catalog) Len() int {
	return len(c.names)
}
