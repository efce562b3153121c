// Package engine orchestrates the parse → match → expand pipeline over an
// immutable catalog. The whole pipeline is a pure computation: once the
// catalog is built, Resolve is safe to call repeatedly and concurrently.
package engine

import (
	"github.com/mapleridge/opsig/internal/engine/catalog"
	"github.com/mapleridge/opsig/internal/engine/expander"
	"github.com/mapleridge/opsig/internal/engine/matcher"
	"github.com/mapleridge/opsig/internal/engine/parser"
	"github.com/mapleridge/opsig/internal/model"
)

// Engine resolves combination lines to signature sets.
type Engine struct {
	matcher *matcher.Matcher
}

// New creates an Engine over the given catalog. Matcher options (threshold
// overrides, manual mappings) are passed through.
func New(cat *catalog.Catalog, threshold float64, opts ...matcher.Option) *Engine {
	return &Engine{matcher: matcher.New(cat, threshold, opts...)}
}

// Resolve parses input, matches every alternative in every slot, and
// expands the Cartesian product of resolved IDs into signatures.
//
// Matching is collect-all: if any alternative stays unresolved, Resolve
// returns UnresolvedOperationError carrying every problem found — or
// AmbiguousRuleContextError when all of them are conditional rules with no
// trigger keyword in the combination.
func (e *Engine) Resolve(input string) (model.Resolution, error) {
	comb, err := parser.Parse(input)
	if err != nil {
		return model.Resolution{}, err
	}

	var (
		matches    []model.MatchResult
		unresolved []model.MatchResult
		slots      = make([][]model.MatchResult, len(comb.Slots))
	)
	for i, slot := range comb.Slots {
		for _, alt := range slot.Alternatives {
			res := e.matcher.Match(alt, comb.Raw)
			matches = append(matches, res)
			if res.Confidence == model.Unresolved {
				unresolved = append(unresolved, res)
				continue
			}
			slots[i] = append(slots[i], res)
		}
	}

	if len(unresolved) > 0 {
		allAmbiguous := true
		for _, r := range unresolved {
			if r.Reason != model.ReasonMissingRuleContext {
				allAmbiguous = false
				break
			}
		}
		if allAmbiguous {
			return model.Resolution{}, &AmbiguousRuleContextError{
				UnresolvedOperationError{Unresolved: unresolved},
			}
		}
		return model.Resolution{}, &UnresolvedOperationError{Unresolved: unresolved}
	}

	return model.Resolution{
		Input:      comb.Raw,
		Signatures: expander.Expand(slots),
		Matches:    matches,
	}, nil
}
