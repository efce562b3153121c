package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and removes interior space", "  上颌骨 全切术 ", "上颌骨全切术"},
		{"folds full-width latin", "ＡＢＣ", "ABC"},
		{"plain ascii unchanged", "ABC", "ABC"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func TestLineFoldsSeparators(t *testing.T) {
	// Full-width ＋ and ／ must become their ASCII forms so the parser
	// sees them as separators.
	assert.Equal(t, "a+b/c", Line("ａ＋ｂ／ｃ"))
}

func TestLineKeepsInteriorSpace(t *testing.T) {
	assert.Equal(t, "a + b", Line("  a + b  "))
}
