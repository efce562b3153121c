package opsig

import (
	"github.com/mapleridge/opsig/internal/engine"
	"github.com/mapleridge/opsig/internal/engine/parser"
	"github.com/mapleridge/opsig/internal/model"
	"github.com/mapleridge/opsig/internal/refdata"
)

// CatalogEntry is one reference-table row: canonical operation name and its
// numeric identifier.
type CatalogEntry struct {
	ID   int
	Name string
}

// RuleBranch is one conditional arm of a multi-ID rule.
type RuleBranch struct {
	Keyword string
	IDs     []int
}

// Rule maps an operation name to more than one identifier, unconditionally
// (IDs) or conditionally on context keywords (Branches, priority order).
type Rule struct {
	Name     string
	IDs      []int
	Branches []RuleBranch
}

// Signature is one resolved ID sequence, one identifier per slot.
type Signature = model.Signature

// Confidence reports how a name was matched: exact, fuzzy, or unresolved.
type Confidence = model.Confidence

// Confidence values.
const (
	Exact      = model.Exact
	Fuzzy      = model.Fuzzy
	Unresolved = model.Unresolved
)

// Match is the per-name resolution detail. Callers that want to gate fuzzy
// matches behind confirmation inspect Confidence and Score here.
type Match = model.MatchResult

// Resolution is the full outcome of resolving one combination.
type Resolution = model.Resolution

// Error types, usable with errors.As:
//
//	ParseError                — malformed combination syntax; fix the input
//	ReferenceDataError        — reference source missing/malformed; fatal
//	UnresolvedOperationError  — names below match confidence; confirm or override
//	AmbiguousRuleContextError — conditional rule with no trigger keyword present
type (
	ParseError                = parser.ParseError
	ReferenceDataError        = refdata.ReferenceDataError
	UnresolvedOperationError  = engine.UnresolvedOperationError
	AmbiguousRuleContextError = engine.AmbiguousRuleContextError
)
