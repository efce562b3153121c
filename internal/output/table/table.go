// Package table writes signatures as CSV rows shaped for the downstream
// billing sheet: only operation_signature is filled, the remaining columns
// are left empty for external enrichment.
package table

import (
	"context"
	"fmt"
	"io"

	"github.com/mapleridge/opsig/internal/model"
	"github.com/mapleridge/opsig/internal/output"
)

const header = "id,disease_id,operation_signature,canonical_name_zh,canonical_name_en,notes"

func init() {
	output.Register("table", func(w io.Writer) output.Output { return New(w) })
}

// Output writes one CSV row per signature. The signature field is always
// quoted: downstream sheets expect `"5,6"` even for single-ID signatures,
// which is why rows are formatted by hand instead of through csv.Writer's
// quote-when-needed rule.
type Output struct {
	w           io.Writer
	wroteHeader bool
}

// New creates a table Output over w.
func New(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(_ context.Context, res model.Resolution) error {
	if !o.wroteHeader {
		if _, err := fmt.Fprintln(o.w, header); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
		o.wroteHeader = true
	}
	for _, sig := range res.Signatures {
		if _, err := fmt.Fprintf(o.w, ",,%q,,,\n", sig.String()); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
