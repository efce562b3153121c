// Package jsonout writes resolutions as the JSON envelope the automation
// skills emit: a success flag, the resolved input, and the signature set.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mapleridge/opsig/internal/model"
	"github.com/mapleridge/opsig/internal/output"
)

func init() {
	output.Register("json", func(w io.Writer) output.Output { return New(w, false) })
}

// envelope is the wire form of one resolution.
type envelope struct {
	Success    bool     `json:"success"`
	Input      string   `json:"input"`
	Count      int      `json:"count"`
	Signatures []string `json:"signatures"`
	Matches    []match  `json:"matches,omitempty"`
}

type match struct {
	Input      string  `json:"input"`
	Matched    string  `json:"matched"`
	IDs        []int   `json:"ids"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
}

// Output JSON-encodes resolutions. Fuzzy matches stay visible in the
// matches array so callers can decide whether to require confirmation.
type Output struct {
	enc *json.Encoder
}

// New creates a JSON Output over w, optionally pretty-printed.
func New(w io.Writer, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, res model.Resolution) error {
	env := envelope{
		Success: true,
		Input:   res.Input,
		Count:   len(res.Signatures),
	}
	env.Signatures = make([]string, len(res.Signatures))
	for i, sig := range res.Signatures {
		env.Signatures[i] = sig.String()
	}
	for _, m := range res.Matches {
		env.Matches = append(env.Matches, match{
			Input:      m.Input,
			Matched:    m.Matched,
			IDs:        m.IDs,
			Confidence: m.Confidence.String(),
			Score:      m.Score,
		})
	}
	if err := o.enc.Encode(env); err != nil {
		return fmt.Errorf("json output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
