package engine

import (
	"fmt"
	"strings"

	"github.com/mapleridge/opsig/internal/model"
)

// UnresolvedOperationError reports every operation name in a combination
// that could not be matched with sufficient confidence. All problems are
// collected in one pass so the caller sees them together; near-misses carry
// the best candidate and its score for manual confirmation.
type UnresolvedOperationError struct {
	Unresolved []model.MatchResult
}

func (e *UnresolvedOperationError) Error() string {
	names := make([]string, len(e.Unresolved))
	for i, r := range e.Unresolved {
		names[i] = r.Input
	}
	return fmt.Sprintf("unresolved operations: %s", strings.Join(names, ", "))
}

// Names returns the unresolved input names in combination order.
func (e *UnresolvedOperationError) Names() []string {
	names := make([]string, len(e.Unresolved))
	for i, r := range e.Unresolved {
		names[i] = r.Input
	}
	return names
}

// AmbiguousRuleContextError is the specialization returned when every
// failure is a conditional multi-ID rule whose trigger keywords were wholly
// absent from the combination. It unwraps to UnresolvedOperationError so
// errors.As matches either type.
type AmbiguousRuleContextError struct {
	UnresolvedOperationError
}

func (e *AmbiguousRuleContextError) Error() string {
	return fmt.Sprintf("ambiguous rule context, manual confirmation needed: %s",
		strings.Join(e.Names(), ", "))
}

func (e *AmbiguousRuleContextError) Unwrap() error {
	return &e.UnresolvedOperationError
}
