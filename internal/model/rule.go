package model

// RuleBranch is one conditional arm of a multi-ID rule: if Keyword occurs
// anywhere in the combination, the rule resolves to IDs.
type RuleBranch struct {
	Keyword string
	IDs     []int
}

// Rule maps one operation name to more than one identifier, either
// unconditionally (IDs set) or conditionally (Branches set, checked in
// declared priority order). Exactly one of the two is populated.
type Rule struct {
	Name     string
	IDs      []int
	Branches []RuleBranch
}

// Conditional reports whether the rule requires a trigger keyword.
func (r Rule) Conditional() bool {
	return len(r.Branches) > 0
}
