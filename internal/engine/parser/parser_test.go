package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapleridge/opsig/internal/model"
)

func alternatives(c model.Combination) [][]string {
	out := make([][]string, len(c.Slots))
	for i, s := range c.Slots {
		out[i] = s.Alternatives
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{
			"single operation",
			"气管切开术",
			[][]string{{"气管切开术"}},
		},
		{
			"slots in order",
			"上颌骨全切术+颈淋巴结清扫术+气管切开术",
			[][]string{{"上颌骨全切术"}, {"颈淋巴结清扫术"}, {"气管切开术"}},
		},
		{
			"alternatives within a slot",
			"A+B/C",
			[][]string{{"A"}, {"B", "C"}},
		},
		{
			"whitespace trimmed",
			" 上颌骨全切术 + 气管切开术 ",
			[][]string{{"上颌骨全切术"}, {"气管切开术"}},
		},
		{
			"full-width separators",
			"上颌骨全切术＋颈淋巴结清扫术／气管切开术",
			[][]string{{"上颌骨全切术"}, {"颈淋巴结清扫术", "气管切开术"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comb, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alternatives(comb))
		})
	}
}

func TestParseSuffixRecombination(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"bare prefixes get the qualifier",
			"游离前臂/股前外侧皮瓣修复术",
			[]string{"游离前臂皮瓣修复术", "股前外侧皮瓣修复术"},
		},
		{
			"three prefixes one suffix",
			"股前外侧/腓骨/肌骨皮瓣修复术",
			[]string{"股前外侧皮瓣修复术", "腓骨皮瓣修复术", "肌骨皮瓣修复术"},
		},
		{
			"overlapping prefix takes the shorter qualifier",
			"游离皮瓣/游离肌皮瓣修复术",
			[]string{"游离皮瓣修复术", "游离肌皮瓣修复术"},
		},
		{
			"full names left alone",
			"全喉切除术/半喉切除术",
			[]string{"全喉切除术", "半喉切除术"},
		},
		{
			"no qualifier on last leaves prefixes bare",
			"A/B",
			[]string{"A", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comb, err := Parse(tt.in)
			require.NoError(t, err)
			require.Len(t, comb.Slots, 1)
			assert.Equal(t, tt.want, comb.Slots[0].Alternatives)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"blank input", "   "},
		{"empty slot", "上颌骨全切术++气管切开术"},
		{"trailing slot separator", "上颌骨全切术+"},
		{"empty alternative", "上颌骨全切术+气管切开术/"},
		{"lone alternative separator", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}

func TestParseKeepsRawNormalized(t *testing.T) {
	comb, err := Parse("  上颌骨全切术＋气管切开术 ")
	require.NoError(t, err)
	assert.Equal(t, "上颌骨全切术+气管切开术", comb.Raw)
}
