// Package parser splits a raw combination line into ordered slots of
// alternative operation names.
package parser

import (
	"fmt"
	"strings"

	"github.com/mapleridge/opsig/internal/engine/normalize"
	"github.com/mapleridge/opsig/internal/model"
)

const (
	slotSep = "+"
	altSep  = "/"
)

// qualifiers are the trailing operation qualifier words a slot's last
// alternative can donate to bare-prefix alternatives, checked longest
// first. 皮瓣修复术 before 修复术 before 术.
var qualifiers = []string{
	"皮瓣修复术",
	"组织瓣修复术",
	"修复术",
	"重建术",
	"切除术",
	"清扫术",
	"切开术",
	"成形术",
	"术",
}

// ParseError reports malformed combination syntax. Recoverable: the caller
// can re-prompt with corrected input.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

// Parse splits raw into ordered slots and alternatives. The input is width-
// folded first, so full-width ＋ and ／ separators work. Empty slots or
// alternatives after trimming are rejected.
func Parse(raw string) (model.Combination, error) {
	line := normalize.Line(raw)
	if line == "" {
		return model.Combination{}, &ParseError{Input: raw, Reason: "empty combination"}
	}

	parts := strings.Split(line, slotSep)
	slots := make([]model.Slot, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			return model.Combination{}, &ParseError{Input: raw, Reason: fmt.Sprintf("empty slot at position %d", i+1)}
		}
		alts := strings.Split(part, altSep)
		names := make([]string, 0, len(alts))
		for _, alt := range alts {
			name := normalize.Name(alt)
			if name == "" {
				return model.Combination{}, &ParseError{Input: raw, Reason: fmt.Sprintf("empty alternative in slot %d", i+1)}
			}
			names = append(names, name)
		}
		slots = append(slots, model.Slot{Alternatives: recombine(names)})
	}

	return model.Combination{Raw: line, Slots: slots}, nil
}

// recombine reconstructs full candidate names when alternatives share a
// trailing qualifier: in 股前外侧/腓骨/肌骨皮瓣修复术 only the last
// alternative carries 皮瓣修复术, so each bare prefix gets the qualifier
// appended. Alternatives that already end in 术 are left untouched.
func recombine(names []string) []string {
	if len(names) < 2 {
		return names
	}
	last := names[len(names)-1]
	if !strings.HasSuffix(last, "术") {
		return names
	}

	bare := false
	for _, n := range names[:len(names)-1] {
		if !strings.HasSuffix(n, "术") {
			bare = true
			break
		}
	}
	if !bare {
		return names
	}

	q := pickQualifier(last, names[:len(names)-1])
	if q == "" {
		return names
	}

	out := make([]string, len(names))
	copy(out, names)
	for i, n := range out[:len(out)-1] {
		if !strings.HasSuffix(n, "术") {
			out[i] = n + q
		}
	}
	return out
}

// pickQualifier selects the longest known qualifier that is a proper suffix
// of the donor name and does not duplicate text already ending any bare
// prefix (游离皮瓣 + 皮瓣修复术 would double 皮瓣, so 修复术 wins there).
func pickQualifier(donor string, prefixes []string) string {
	for _, q := range qualifiers {
		if !strings.HasSuffix(donor, q) || len(donor) == len(q) {
			continue
		}
		if overlapsAny(prefixes, q) {
			continue
		}
		return q
	}
	return ""
}

// overlapsAny reports whether any bare prefix already ends with a non-empty
// leading fragment of q.
func overlapsAny(prefixes []string, q string) bool {
	qr := []rune(q)
	for _, p := range prefixes {
		if strings.HasSuffix(p, "术") {
			continue // full name, not recombined
		}
		for k := len(qr) - 1; k >= 1; k-- {
			if strings.HasSuffix(p, string(qr[:k])) {
				return true
			}
		}
	}
	return false
}
