package plain

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapleridge/opsig/internal/model"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)

	res := model.Resolution{
		Input: "A+B/C",
		Signatures: []model.Signature{
			{5, 6},
			{5, 7},
		},
	}
	require.NoError(t, out.Write(context.Background(), res))
	require.NoError(t, out.Close())

	assert.Equal(t, "5,6\n5,7\n", buf.String())
}

func TestWriteNoSignatures(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)
	require.NoError(t, out.Write(context.Background(), model.Resolution{}))
	assert.Empty(t, buf.String())
}
