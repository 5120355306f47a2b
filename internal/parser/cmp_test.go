package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gossf/ssf/internal/ast"
)

// TestParse_Deterministic guards against a parser that depends on map
// iteration order or otherwise non-reproducible state: the same format
// string must always produce byte-for-byte identical Sections, and
// go-cmp's full recursive diff pinpoints exactly which Part or Metadata
// field drifted instead of just reporting "not equal" like assert.Equal.
func TestParse_Deterministic(t *testing.T) {
	const format = `[>100][Red]#,##0.00"USD";[<0](#,##0.00);0;@`

	first, err := Parse(format)
	require.NoError(t, err)
	second, err := Parse(format)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Sections, second.Sections); diff != "" {
		t.Errorf("Parse(%q) is not deterministic (-first +second):\n%s", format, diff)
	}
}

// TestParse_ConditionalFourSectionShape pins the full parsed shape of a
// four-section conditional format against a literal expectation, so a
// regression that reorders or mis-tags a single Part is caught even when
// it wouldn't move Len(Sections) or any single spot-checked field.
func TestParse_ConditionalFourSectionShape(t *testing.T) {
	f, err := Parse(`[>100]0;[<0](0);0;@`)
	require.NoError(t, err)

	want := []ast.Section{
		{
			Condition: &ast.Condition{Op: ast.OpGT, Threshold: 100},
			Parts: []ast.Part{
				{Kind: ast.PartDigit, Placeholder: ast.Zero, N: 1},
			},
			Meta: ast.Metadata{FormatType: ast.Number},
		},
		{
			Condition: &ast.Condition{Op: ast.OpLT, Threshold: 0},
			Parts: []ast.Part{
				{Kind: ast.PartLiteral, Literal: "("},
				{Kind: ast.PartDigit, Placeholder: ast.Zero, N: 1},
				{Kind: ast.PartLiteral, Literal: ")"},
			},
			Meta: ast.Metadata{FormatType: ast.Number},
		},
		{
			Parts: []ast.Part{
				{Kind: ast.PartDigit, Placeholder: ast.Zero, N: 1},
			},
			Meta: ast.Metadata{FormatType: ast.Number},
		},
		{
			Parts: []ast.Part{
				{Kind: ast.PartText},
			},
			Meta: ast.Metadata{FormatType: ast.Text},
		},
	}

	if diff := cmp.Diff(want, f.Sections); diff != "" {
		t.Errorf("Parse(...) Sections mismatch (-want +got):\n%s", diff)
	}
}
