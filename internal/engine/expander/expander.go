// Package expander turns per-slot match results into the full set of
// signatures: the Cartesian product across slots, slot order preserved.
package expander

import "github.com/mapleridge/opsig/internal/model"

// Expand computes every signature implied by the resolved slots. Iteration
// is slot order outer to inner, alternatives in parse order, rule IDs in
// declared order, so output order is deterministic. Identical signatures
// (two alternatives resolving to the same IDs) collapse to the first
// occurrence. All results must be resolved; unresolved slots are the
// engine's responsibility.
func Expand(slots [][]model.MatchResult) []model.Signature {
	if len(slots) == 0 {
		return nil
	}

	// Flatten each slot into its ID branches: one branch per ID per
	// alternative.
	branches := make([][]int, len(slots))
	for i, results := range slots {
		for _, res := range results {
			branches[i] = append(branches[i], res.IDs...)
		}
	}

	product := [][]int{{}}
	for _, ids := range branches {
		next := make([][]int, 0, len(product)*len(ids))
		for _, prefix := range product {
			for _, id := range ids {
				sig := make([]int, len(prefix)+1)
				copy(sig, prefix)
				sig[len(prefix)] = id
				next = append(next, sig)
			}
		}
		product = next
	}

	// First-seen dedup, preserving order.
	seen := make(map[string]struct{}, len(product))
	out := make([]model.Signature, 0, len(product))
	for _, sig := range product {
		s := model.Signature(sig)
		key := s.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
