// Package matcher resolves one candidate operation name to a MatchResult:
// exact catalog hit, rule-driven ID set, fuzzy best match, or unresolved.
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/mapleridge/opsig/internal/engine/catalog"
	"github.com/mapleridge/opsig/internal/engine/normalize"
	"github.com/mapleridge/opsig/internal/model"
)

// DefaultThreshold is the minimum similarity for a fuzzy match. A single
// transposed character in a five-rune name still clears it; unrelated names
// fall well below.
const DefaultThreshold = 0.6

// Matcher resolves candidate names against an immutable catalog.
// Safe for concurrent use.
type Matcher struct {
	cat       *catalog.Catalog
	threshold float64
	overrides map[string][]int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithOverrides installs a manual name→IDs mapping consulted before the
// catalog. Callers use this to retry after confirming an unresolved name.
func WithOverrides(m map[string][]int) Option {
	return func(mt *Matcher) {
		if len(m) == 0 {
			return
		}
		mt.overrides = make(map[string][]int, len(m))
		for name, ids := range m {
			mt.overrides[normalize.Name(name)] = ids
		}
	}
}

// New creates a Matcher. A non-positive threshold falls back to
// DefaultThreshold.
func New(cat *catalog.Catalog, threshold float64, opts ...Option) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	m := &Matcher{cat: cat, threshold: threshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves one candidate name. combination is the full normalized
// input line: conditional rules scan it, not just the candidate's slot, for
// their trigger keywords.
func (m *Matcher) Match(candidate, combination string) model.MatchResult {
	name := normalize.Name(candidate)

	if ids, ok := m.overrides[name]; ok {
		return model.MatchResult{Input: candidate, Matched: name, IDs: ids, Confidence: model.Exact, Score: 1}
	}

	// Exact hit. Multi-ID rules take precedence over a plain catalog ID
	// for the same name: they encode the additional billing variants.
	if rule, ok := m.cat.Rule(name); ok {
		return m.applyRule(candidate, name, rule, combination, model.Exact, 1)
	}
	if id, ok := m.cat.Lookup(name); ok {
		return model.MatchResult{Input: candidate, Matched: name, IDs: []int{id}, Confidence: model.Exact, Score: 1}
	}

	best, score := m.closest(name)
	if score < m.threshold {
		return model.MatchResult{
			Input:      candidate,
			Confidence: model.Unresolved,
			Reason:     model.ReasonNoMatch,
			Best:       best,
			BestScore:  score,
		}
	}

	if rule, ok := m.cat.Rule(best); ok {
		return m.applyRule(candidate, best, rule, combination, model.Fuzzy, score)
	}
	id, _ := m.cat.Lookup(best)
	return model.MatchResult{Input: candidate, Matched: best, IDs: []int{id}, Confidence: model.Fuzzy, Score: score}
}

// applyRule resolves a multi-ID rule. Conditional rules pick the first
// branch whose keyword occurs anywhere in the combination; with no keyword
// present the result is unresolved — never an arbitrary branch.
func (m *Matcher) applyRule(candidate, name string, rule model.Rule, combination string, conf model.Confidence, score float64) model.MatchResult {
	if !rule.Conditional() {
		return model.MatchResult{Input: candidate, Matched: name, IDs: rule.IDs, Confidence: conf, Score: score}
	}
	for _, br := range rule.Branches {
		if strings.Contains(combination, br.Keyword) {
			return model.MatchResult{Input: candidate, Matched: name, IDs: br.IDs, Confidence: conf, Score: score}
		}
	}
	return model.MatchResult{
		Input:      candidate,
		Matched:    name,
		Confidence: model.Unresolved,
		Reason:     model.ReasonMissingRuleContext,
		Score:      score,
	}
}

// closest finds the highest-scoring catalog name. Ties break toward the
// shorter name, then the lexicographically smaller one, so repeated runs
// against the same catalog always pick the same entry.
func (m *Matcher) closest(name string) (string, float64) {
	var (
		bestName  string
		bestScore = -1.0
		bestLen   int
	)
	for _, n := range m.cat.Names() {
		s := similarity(name, n)
		l := utf8.RuneCountInString(n)
		if s > bestScore ||
			(s == bestScore && (l < bestLen || (l == bestLen && n < bestName))) {
			bestName, bestScore, bestLen = n, s, l
		}
	}
	return bestName, bestScore
}

// similarity is normalized Levenshtein over runes: 1 - dist/maxLen.
// Deterministic and symmetric.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(max)
}
