package model

// Slot is one `+`-separated segment of a combination: a non-empty ordered
// list of alternative operation names. Order is preserved for determinism
// but carries no ranking.
type Slot struct {
	Alternatives []string
}

// Combination is a parsed input line: ordered slots plus the normalized
// original text, which conditional rules scan for trigger keywords.
type Combination struct {
	Raw   string
	Slots []Slot
}
