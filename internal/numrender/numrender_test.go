package numrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/parser"
	"github.com/gossf/ssf/locale"
)

func render(t *testing.T, format string, absValue float64, prependMinus bool) string {
	t.Helper()
	f, err := parser.Parse(format)
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	require.Equal(t, ast.Number, f.Sections[0].Meta.FormatType)
	return Render(f.Sections[0], absValue, locale.EnUS, prependMinus)
}

func TestRender_ThousandsGrouping(t *testing.T) {
	assert.Equal(t, "1,234,567", render(t, "#,##0", 1234567, false))
}

func TestRender_FixedDecimals(t *testing.T) {
	assert.Equal(t, "1234.50", render(t, "0.00", 1234.5, false))
}

func TestRender_TrailingHashDropped(t *testing.T) {
	assert.Equal(t, "1234.5", render(t, "0.0#", 1234.5, false))
	assert.Equal(t, "1234", render(t, "0.##", 1234, false))
}

func TestRender_TrailingQuestionBlanked(t *testing.T) {
	assert.Equal(t, "1234.5 ", render(t, "0.0?", 1234.5, false))
}

func TestRender_Percent(t *testing.T) {
	assert.Equal(t, "50%", render(t, "0%", 0.5, false))
}

func TestRender_ScaleByThousand(t *testing.T) {
	assert.Equal(t, "1,235", render(t, "#,##0,", 1234567, false))
}

func TestRender_IntegerLeadingZeroPad(t *testing.T) {
	assert.Equal(t, "007", render(t, "000", 7, false))
}

func TestRender_IntegerNeverTruncates(t *testing.T) {
	assert.Equal(t, "123456", render(t, "00", 123456, false))
}

func TestRender_QuestionPadsLeadingSpace(t *testing.T) {
	assert.Equal(t, "  7", render(t, "???", 7, false))
}

func TestRender_PrependMinus(t *testing.T) {
	assert.Equal(t, "-1,234", render(t, "#,##0", 1234, true))
}

func TestRender_Scientific(t *testing.T) {
	assert.Equal(t, "1.50E+03", render(t, "0.00E+00", 1500, false))
}

func TestRender_ScientificEngineeringWidth(t *testing.T) {
	assert.Equal(t, "150.0E+01", render(t, "000.0E+00", 1500, false))
}

func TestRender_NoIntegerPlaceholderDropsLeadingZero(t *testing.T) {
	assert.Equal(t, ".50", render(t, ".00", 0.5, false))
}

func TestRender_LiteralOnlySectionEmitsNoDigits(t *testing.T) {
	// A Number-classified section with no digit placeholder at all (just
	// a quoted literal) must render only that literal, never the value.
	assert.Equal(t, "zero", render(t, `"zero"`, 0, false))
}

func TestRender_IntegerFastPathLargeWholeNumber(t *testing.T) {
	// No fractional placeholders and an exact whole number below 2^53
	// routes through the integer fast path; grouping still applies the
	// same way it would coming out of the float path.
	assert.Equal(t, "9,007,199,254,740,000", render(t, "#,##0", 9007199254740000, false))
}
