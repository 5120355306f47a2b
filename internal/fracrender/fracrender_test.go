package fracrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/parser"
)

func render(t *testing.T, format string, absValue float64, prependMinus bool) string {
	t.Helper()
	f, err := parser.Parse(format)
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	require.Equal(t, ast.Fraction, f.Sections[0].Meta.FormatType)
	return Render(f.Sections[0], absValue, prependMinus)
}

func TestRender_FixedDenominatorSixteenths(t *testing.T) {
	// 0.5 -> 8/16; a zero integer part emits neither digits nor the
	// separator space, and the numerator is left-padded to the
	// denominator's width.
	assert.Equal(t, " 8/16", render(t, "# ?/16", 0.5, false))
}

func TestRender_FixedDenominatorRollsOverIntoInteger(t *testing.T) {
	// A fractional part that rounds up to the fixed denominator rolls
	// its numerator to zero and carries one into the integer part.
	assert.Equal(t, "1  0/16", render(t, "# ?/16", 0.96875, false))
}

func TestRender_ImproperFractionNoIntegerPart(t *testing.T) {
	// 1.5 as an improper fraction with up-to-2-digit denominator.
	out := render(t, "??/??", 1.5, false)
	assert.Equal(t, "3/2", out)
}

func TestRender_UpToDigitsBestApprox(t *testing.T) {
	// 0.333... best-approximated with a 1-digit denominator cap is 1/3,
	// with a zero integer part emitting neither digits nor a separator.
	out := render(t, "# ?/?", 1.0/3.0, false)
	assert.Equal(t, "1/3", out)
}

func TestRender_PrependMinus(t *testing.T) {
	out := render(t, "# ?/16", 0.5, true)
	assert.Equal(t, "- 8/16", out)
}
