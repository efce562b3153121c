package model

// Operation is one row of the reference catalog: a canonical operation name
// mapped to its numeric billing identifier.
type Operation struct {
	ID   int
	Name string
}

// Confidence describes how a candidate name was resolved.
type Confidence int

const (
	// Exact means the candidate matched a catalog name verbatim
	// (after normalization).
	Exact Confidence = iota
	// Fuzzy means the candidate matched the closest catalog name above
	// the similarity threshold.
	Fuzzy
	// Unresolved means no match with sufficient confidence was found.
	Unresolved
)

func (c Confidence) String() string {
	switch c {
	case Exact:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	default:
		return "unresolved"
	}
}

// UnresolvedReason narrows why a candidate stayed unresolved.
type UnresolvedReason int

const (
	// ReasonNone applies to exact and fuzzy results.
	ReasonNone UnresolvedReason = iota
	// ReasonNoMatch means no catalog name scored above the threshold.
	ReasonNoMatch
	// ReasonMissingRuleContext means a conditional multi-ID rule matched
	// the name but none of its trigger keywords appear anywhere in the
	// combination.
	ReasonMissingRuleContext
)

// MatchResult is the outcome of resolving one candidate operation name.
type MatchResult struct {
	Input      string           // candidate name as parsed
	Matched    string           // catalog name that resolved it ("" when unresolved)
	IDs        []int            // one or more identifiers, rule order preserved
	Confidence Confidence
	Score      float64          // similarity score; 1.0 for exact
	Reason     UnresolvedReason // set when Confidence is Unresolved
	Best       string           // best near-miss candidate for diagnostics
	BestScore  float64          // its score
}
