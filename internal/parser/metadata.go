package parser

import (
	"strings"

	"github.com/gossf/ssf/internal/ast"
)

// computeMetadata derives a Section's Metadata in one pass over its
// already-lowered Parts, plus the isHijri flag tracked during bracket
// classification (carried on sec.Meta.IsHijri by applyBracket).
func computeMetadata(sec ast.Section) ast.Metadata {
	meta := ast.Metadata{IsHijri: sec.Meta.IsHijri}

	hasFraction := false
	hasDateClass := false
	hasTextPlaceholder := false
	onlyText := true

	for _, p := range sec.Parts {
		switch p.Kind {
		case ast.PartAmPm:
			meta.HasAmPm = true
			hasDateClass = true
		case ast.PartDatePart:
			hasDateClass = true
			if p.DateField == ast.SubSecond {
				if p.N > meta.MaxSubSecondPrecision {
					meta.MaxSubSecondPrecision = p.N
				}
			}
		case ast.PartElapsed:
			meta.HasElapsed = true
			hasDateClass = true
		case ast.PartFraction:
			hasFraction = true
		case ast.PartText:
			hasTextPlaceholder = true
		case ast.PartHijriMarker:
			// handled via sec.Meta.IsHijri already
		case ast.PartLiteral, ast.PartFill, ast.PartSkip, ast.PartLocale:
			// inert for classification
		default:
			onlyText = false
		}
		if p.Kind != ast.PartText && p.Kind != ast.PartLiteral && p.Kind != ast.PartFill &&
			p.Kind != ast.PartSkip && p.Kind != ast.PartLocale && p.Kind != ast.PartHijriMarker {
			onlyText = false
		}
	}

	meta.SmallestTimeUnit = smallestTimeUnit(sec.Parts)

	switch {
	case isGeneralKeyword(sec.Parts):
		meta.FormatType = ast.General
	case hasDateClass:
		meta.FormatType = ast.DateTime
	case hasFraction:
		meta.FormatType = ast.Fraction
	case hasTextPlaceholder && onlyText:
		meta.FormatType = ast.Text
	default:
		meta.FormatType = ast.Number
	}

	return meta
}

// isGeneralKeyword reports whether a section is nothing but the bare
// "General" keyword (case-insensitive, the way Excel's own date letters
// and keyword tokens are), the same special case the teacher's
// resolveFormat/formatFloat short-circuited before ever touching a
// section's parts.
func isGeneralKeyword(parts []ast.Part) bool {
	return len(parts) == 1 && parts[0].Kind == ast.PartLiteral && strings.EqualFold(parts[0].Literal, "General")
}

// smallestTimeUnit finds the finest time granularity any part in the
// section displays, used to pre-round the serial before rendering.
func smallestTimeUnit(parts []ast.Part) ast.SmallestTimeUnit {
	best := ast.UnitNone
	bump := func(u ast.SmallestTimeUnit) {
		if u > best {
			best = u
		}
	}
	for _, p := range parts {
		switch p.Kind {
		case ast.PartDatePart:
			switch p.DateField {
			case ast.Hour, ast.Hour2:
				bump(ast.UnitHours)
			case ast.Minute, ast.Minute2:
				bump(ast.UnitMinutes)
			case ast.Second, ast.Second2:
				bump(ast.UnitSeconds)
			case ast.SubSecond:
				bump(ast.UnitSubseconds)
			}
		case ast.PartElapsed:
			switch p.Elapsed {
			case ast.ElapsedHours:
				bump(ast.UnitHours)
			case ast.ElapsedMinutes:
				bump(ast.UnitMinutes)
			case ast.ElapsedSeconds:
				bump(ast.UnitSeconds)
			}
		}
	}
	return best
}
