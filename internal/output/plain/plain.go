// Package plain writes one comma-joined signature per line.
package plain

import (
	"context"
	"fmt"
	"io"

	"github.com/mapleridge/opsig/internal/model"
	"github.com/mapleridge/opsig/internal/output"
)

func init() {
	output.Register("plain", func(w io.Writer) output.Output { return New(w) })
}

// Output writes signatures as plain `id,id,...` lines, in resolution order.
type Output struct {
	w io.Writer
}

// New creates a plain Output over w.
func New(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(_ context.Context, res model.Resolution) error {
	for _, sig := range res.Signatures {
		if _, err := fmt.Fprintln(o.w, sig.String()); err != nil {
			return fmt.Errorf("plain output: %w", err)
		}
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
