package output

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapleridge/opsig/internal/model"
)

type nopOutput struct{}

func (nopOutput) Write(context.Context, model.Resolution) error { return nil }
func (nopOutput) Close() error                                  { return nil }

func TestRegistry(t *testing.T) {
	Register("nop", func(io.Writer) Output { return nopOutput{} })

	ctor, err := Get("nop")
	require.NoError(t, err)
	assert.NotNil(t, ctor(io.Discard))

	_, err = Get("bogus")
	assert.Error(t, err)

	assert.Contains(t, Formats(), "nop")
}
