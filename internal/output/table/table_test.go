package table

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
		Signatures: []model.Signature{
			{2, 9},
			{2, 132},
		},
	}
	require.NoError(t, out.Write(context.Background(), res))
	require.NoError(t, out.Close())

	want := "id,disease_id,operation_signature,canonical_name_zh,canonical_name_en,notes\n" +
		",,\"2,9\",,,\n" +
		",,\"2,132\",,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteQuotesSingleID(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)

	res := model.Resolution{Signatures: []model.Signature{{7}}}
	require.NoError(t, out.Write(context.Background(), res))

	// Single-ID signatures are still quoted.
	assert.Contains(t, buf.String(), ",,\"7\",,,\n")
}

func TestHeaderWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf)

	res := model.Resolution{Signatures: []model.Signature{{1}}}
	require.NoError(t, out.Write(context.Background(), res))
	require.NoError(t, out.Write(context.Background(), res))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("operation_signature")))
}
