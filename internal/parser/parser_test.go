package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gossf/ssf/internal/ast"
)

func TestParse_SimpleNumberGrouping(t *testing.T) {
	f, err := Parse("#,##0.00")
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)

	sec := f.Sections[0]
	assert.Equal(t, ast.Number, sec.Meta.FormatType)

	var kinds []ast.PartKind
	for _, p := range sec.Parts {
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []ast.PartKind{
		ast.PartDigit, ast.PartThousands, ast.PartDigit, ast.PartDigit,
		ast.PartDecimalPoint, ast.PartDigit,
	}, kinds)

	assert.Equal(t, ast.Hash, sec.Parts[0].Placeholder)
	assert.Equal(t, 1, sec.Parts[0].N)
	assert.Equal(t, ast.Hash, sec.Parts[2].Placeholder)
	assert.Equal(t, 2, sec.Parts[2].N)
	assert.Equal(t, ast.Zero, sec.Parts[3].Placeholder)
	assert.Equal(t, 1, sec.Parts[3].N)
	assert.Equal(t, ast.Zero, sec.Parts[5].Placeholder)
	assert.Equal(t, 2, sec.Parts[5].N)
}

func TestParse_Percent(t *testing.T) {
	f, err := Parse("0%")
	require.NoError(t, err)
	sec := f.Sections[0]
	require.Len(t, sec.Parts, 2)
	assert.Equal(t, ast.PartDigit, sec.Parts[0].Kind)
	assert.Equal(t, ast.PartPercent, sec.Parts[1].Kind)
}

func TestParse_DateYMD(t *testing.T) {
	f, err := Parse("yyyy-mm-dd")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.Equal(t, ast.DateTime, sec.Meta.FormatType)

	var fields []ast.DatePart
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.Year4, ast.Month2, ast.Day2}, fields)
}

func TestParse_MinuteAfterHour(t *testing.T) {
	f, err := Parse("h:mm AM/PM")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.True(t, sec.Meta.HasAmPm)

	var fields []ast.DatePart
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.Hour, ast.Minute2}, fields)
}

func TestParse_MinuteBeforeSecond(t *testing.T) {
	f, err := Parse("mm:ss")
	require.NoError(t, err)
	sec := f.Sections[0]

	var fields []ast.DatePart
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.Minute2, ast.Second2}, fields)
}

func TestParse_MonthWithoutHourOrSecondNeighbor(t *testing.T) {
	f, err := Parse("mmm yyyy")
	require.NoError(t, err)
	sec := f.Sections[0]

	var fields []ast.DatePart
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.MonthAbbr, ast.Year4}, fields)
}

func TestParse_ElapsedHours(t *testing.T) {
	f, err := Parse("[h]:mm:ss")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.True(t, sec.Meta.HasElapsed)

	require.True(t, len(sec.Parts) >= 1)
	assert.Equal(t, ast.PartElapsed, sec.Parts[0].Kind)
	assert.Equal(t, ast.ElapsedHours, sec.Parts[0].Elapsed)
	assert.Equal(t, 1, sec.Parts[0].ElapsedWidth)

	var fields []ast.DatePart
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.Minute2, ast.Second2}, fields)
}

func TestParse_SubSecond(t *testing.T) {
	f, err := Parse("h:mm:ss.000")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.Equal(t, 3, sec.Meta.MaxSubSecondPrecision)

	var fields []ast.DatePart
	var ns []int
	for _, p := range sec.Parts {
		if p.Kind == ast.PartDatePart {
			fields = append(fields, p.DateField)
			ns = append(ns, p.N)
		}
	}
	assert.Equal(t, []ast.DatePart{ast.Hour, ast.Minute2, ast.Second2, ast.SubSecond}, fields)
	assert.Equal(t, 3, ns[3])
}

func TestParse_FractionUpToDigits(t *testing.T) {
	f, err := Parse("# ?/?")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.Equal(t, ast.Fraction, sec.Meta.FormatType)
	require.True(t, sec.HasFraction())

	var frac ast.Part
	for _, p := range sec.Parts {
		if p.Kind == ast.PartFraction {
			frac = p
		}
	}
	assert.Equal(t, 1, frac.FractionIntegerDigits)
	assert.Equal(t, 1, frac.FractionNumeratorDigits)
	assert.Equal(t, ast.DenomUpToDigits, frac.FractionDenominator.Kind)
	assert.Equal(t, 1, frac.FractionDenominator.Digits)
}

func TestParse_FractionFixedDenominator(t *testing.T) {
	f, err := Parse("# ?/16")
	require.NoError(t, err)
	sec := f.Sections[0]

	var frac ast.Part
	for _, p := range sec.Parts {
		if p.Kind == ast.PartFraction {
			frac = p
		}
	}
	assert.Equal(t, ast.DenomFixed, frac.FractionDenominator.Kind)
	assert.Equal(t, 16, frac.FractionDenominator.Value)
}

func TestParse_ImproperFractionNoIntegerPart(t *testing.T) {
	f, err := Parse("??/??")
	require.NoError(t, err)
	sec := f.Sections[0]

	var frac ast.Part
	for _, p := range sec.Parts {
		if p.Kind == ast.PartFraction {
			frac = p
		}
	}
	assert.Equal(t, 0, frac.FractionIntegerDigits)
	assert.Equal(t, 2, frac.FractionNumeratorDigits)
	assert.Equal(t, ast.DenomUpToDigits, frac.FractionDenominator.Kind)
	assert.Equal(t, 2, frac.FractionDenominator.Digits)
}

func TestParse_ConditionalSections(t *testing.T) {
	f, err := Parse(`[>100]#,##0;[<0](#,##0);0;"zero"`)
	require.NoError(t, err)
	require.Len(t, f.Sections, 4)

	require.NotNil(t, f.Sections[0].Condition)
	assert.Equal(t, ast.OpGT, f.Sections[0].Condition.Op)
	assert.Equal(t, 100.0, f.Sections[0].Condition.Threshold)

	require.NotNil(t, f.Sections[1].Condition)
	assert.Equal(t, ast.OpLT, f.Sections[1].Condition.Op)
	assert.Equal(t, 0.0, f.Sections[1].Condition.Threshold)

	assert.Nil(t, f.Sections[2].Condition)
	assert.Equal(t, ast.Number, f.Sections[3].Meta.FormatType)
}

func TestParse_NegativeParenthesesNoCondition(t *testing.T) {
	f, err := Parse("#,##0;(#,##0)")
	require.NoError(t, err)
	require.Len(t, f.Sections, 2)
	assert.Nil(t, f.Sections[0].Condition)
	assert.Nil(t, f.Sections[1].Condition)
}

func TestParse_ColorAndCondition(t *testing.T) {
	f, err := Parse("[Red][<0]0.00")
	require.NoError(t, err)
	sec := f.Sections[0]
	require.NotNil(t, sec.Color)
	assert.Equal(t, "Red", sec.Color.Named)
	require.NotNil(t, sec.Condition)
	assert.Equal(t, ast.OpLT, sec.Condition.Op)
}

func TestParse_ColorIndexed(t *testing.T) {
	f, err := Parse("[Color12]0.00")
	require.NoError(t, err)
	sec := f.Sections[0]
	require.NotNil(t, sec.Color)
	assert.Equal(t, 12, sec.Color.Indexed)
}

func TestParse_Scientific(t *testing.T) {
	f, err := Parse("0.00E+00")
	require.NoError(t, err)
	sec := f.Sections[0]

	var sci ast.Part
	found := false
	for _, p := range sec.Parts {
		if p.Kind == ast.PartScientific {
			sci = p
			found = true
		}
	}
	require.True(t, found)
	assert.True(t, sci.ScientificUpper)
	assert.True(t, sci.ScientificShowPlus)
}

func TestParse_TextPlaceholder(t *testing.T) {
	f, err := Parse(`@" units"`)
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.Equal(t, ast.Text, sec.Meta.FormatType)
	require.Len(t, sec.Parts, 2)
	assert.Equal(t, ast.PartText, sec.Parts[0].Kind)
	assert.Equal(t, ast.PartLiteral, sec.Parts[1].Kind)
	assert.Equal(t, " units", sec.Parts[1].Literal)
}

func TestParse_LocaleCurrencyEscape(t *testing.T) {
	f, err := Parse(`[$$-409]#,##0.00`)
	require.NoError(t, err)
	sec := f.Sections[0]

	var loc ast.Part
	found := false
	for _, p := range sec.Parts {
		if p.Kind == ast.PartLocale {
			loc = p
			found = true
		}
	}
	require.True(t, found)
	assert.True(t, loc.HasCurrency)
	assert.Equal(t, "$", loc.LocaleCurrency)
	assert.True(t, loc.HasLCID)
	assert.Equal(t, uint32(0x409), loc.LocaleLCID)
}

func TestParse_HijriMarker(t *testing.T) {
	f, err := Parse("[B2]dd/mm/yyyy")
	require.NoError(t, err)
	assert.True(t, f.Sections[0].Meta.IsHijri)
}

func TestParse_FillAndSkip(t *testing.T) {
	f, err := Parse("*-0;_)0")
	require.NoError(t, err)
	require.Len(t, f.Sections, 2)

	sec0 := f.Sections[0]
	require.True(t, len(sec0.Parts) >= 1)
	assert.Equal(t, ast.PartFill, sec0.Parts[0].Kind)
	assert.Equal(t, byte('-'), sec0.Parts[0].FillChar)

	sec1 := f.Sections[1]
	require.True(t, len(sec1.Parts) >= 1)
	assert.Equal(t, ast.PartSkip, sec1.Parts[0].Kind)
	assert.Equal(t, byte(')'), sec1.Parts[0].SkipChar)
}

func TestParse_EmptyStringErrors(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

func TestParse_MoreThanFourSectionsTruncated(t *testing.T) {
	f, err := Parse("0;0;0;0;0")
	require.NoError(t, err)
	assert.Len(t, f.Sections, 4)
}

func TestParse_UnterminatedBracketErrors(t *testing.T) {
	_, err := Parse("[Red0.00")
	require.Error(t, err)
}

func TestParse_UnterminatedQuoteErrors(t *testing.T) {
	_, err := Parse(`"abc`)
	require.Error(t, err)
}

func TestParse_DateLiteralWhenDateClassPresentDisablesFraction(t *testing.T) {
	f, err := Parse("h m/d")
	require.NoError(t, err)
	sec := f.Sections[0]
	assert.False(t, sec.HasFraction())
}
