package model

import (
	"strconv"
	"strings"
)

// Signature is one fully resolved ID sequence, one identifier per slot in
// input order. Ephemeral: computed per request, never persisted here.
type Signature []int

// String renders the signature as a comma-joined ID list, e.g. "5,6".
func (s Signature) String() string {
	var b strings.Builder
	for i, id := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// Resolution is the full outcome of resolving one combination.
type Resolution struct {
	Input      string
	Signatures []Signature
	// Matches holds the per-alternative match results in slot order, for
	// callers that want to inspect fuzzy hits before trusting the output.
	Matches []MatchResult
}
