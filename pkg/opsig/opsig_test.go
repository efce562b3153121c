package opsig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEntries() []CatalogEntry {
	return []CatalogEntry{
		{ID: 2, Name: "上颌骨全切术"},
		{ID: 5, Name: "气管切开术"},
		{ID: 9, Name: "游离肌骨皮瓣修复术"},
	}
}

func fixtureRules() []Rule {
	return []Rule{
		{Name: "游离肌骨皮瓣修复术", Branches: []RuleBranch{
			{Keyword: "上颌", IDs: []int{9, 132}},
			{Keyword: "下颌", IDs: []int{10, 133}},
		}},
	}
}

func TestResolveWithCatalog(t *testing.T) {
	r, err := New(WithCatalog(fixtureEntries(), fixtureRules()))
	require.NoError(t, err)

	res, err := r.Resolve("上颌骨全切术+游离肌骨皮瓣修复术")
	require.NoError(t, err)

	var got []string
	for _, sig := range res.Signatures {
		got = append(got, sig.String())
	}
	assert.Equal(t, []string{"2,9", "2,132"}, got)
}

func TestResolveDefaultData(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	res, err := r.Resolve("游离皮瓣修复术")
	require.NoError(t, err)
	require.Len(t, res.Signatures, 3)
	assert.Equal(t, "1", res.Signatures[0].String())
	assert.Equal(t, "3", res.Signatures[1].String())
	assert.Equal(t, "4", res.Signatures[2].String())
}

func TestResolveUnresolved(t *testing.T) {
	r, err := New(WithCatalog(fixtureEntries(), nil))
	require.NoError(t, err)

	_, err = r.Resolve("气管切开术+qqqqqq")
	require.Error(t, err)

	var unresolved *UnresolvedOperationError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, []string{"qqqqqq"}, unresolved.Names())
}

func TestResolveAmbiguousRuleContext(t *testing.T) {
	r, err := New(WithCatalog(fixtureEntries(), fixtureRules()))
	require.NoError(t, err)

	// No 上颌/下颌 keyword anywhere in the combination.
	_, err = r.Resolve("气管切开术+游离肌骨皮瓣修复术")
	require.Error(t, err)

	var ambiguous *AmbiguousRuleContextError
	assert.True(t, errors.As(err, &ambiguous))
	// The specialized error still satisfies the general one.
	var unresolved *UnresolvedOperationError
	assert.True(t, errors.As(err, &unresolved))
}

func TestResolveParseError(t *testing.T) {
	r, err := New(WithCatalog(fixtureEntries(), nil))
	require.NoError(t, err)

	_, err = r.Resolve("气管切开术++气管切开术")
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestWithOverridesRetryPath(t *testing.T) {
	// First attempt leaves the unknown name unresolved.
	r, err := New(WithCatalog(fixtureEntries(), nil))
	require.NoError(t, err)
	_, err = r.Resolve("自定义手术")
	require.Error(t, err)

	// Retry with a manual mapping for the flagged name.
	r, err = New(
		WithCatalog(fixtureEntries(), nil),
		WithOverrides(map[string][]int{"自定义手术": {77}}),
	)
	require.NoError(t, err)

	res, err := r.Resolve("自定义手术+气管切开术")
	require.NoError(t, err)
	require.Len(t, res.Signatures, 1)
	assert.Equal(t, "77,5", res.Signatures[0].String())
}

func TestNewRejectsBadReferenceData(t *testing.T) {
	_, err := New(WithCatalogFile("testdata/does_not_exist.csv"))
	require.Error(t, err)

	var refErr *ReferenceDataError
	assert.True(t, errors.As(err, &refErr))
}

func TestWithThreshold(t *testing.T) {
	// 上颌骨全切术 vs 上颌骨全切除术 is a one-rune insertion, similarity 6/7.
	strict, err := New(WithCatalog(fixtureEntries(), nil), WithThreshold(0.95))
	require.NoError(t, err)
	_, err = strict.Resolve("上颌骨全切除术")
	assert.Error(t, err)

	lax, err := New(WithCatalog(fixtureEntries(), nil), WithThreshold(0.8))
	require.NoError(t, err)
	res, err := lax.Resolve("上颌骨全切除术")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, Fuzzy, res.Matches[0].Confidence)
}
