package parser

import "github.com/gossf/ssf/internal/ast"

// lower converts the resolved intermediate representation into the
// public ast.Part union. By this point every m-run, subsecond triple,
// and fraction slash has already been resolved.
func lower(pre []prePart) []ast.Part {
	out := make([]ast.Part, 0, len(pre))
	for _, p := range pre {
		switch p.kind {
		case ppLiteral:
			if p.literal == "" {
				continue
			}
			out = append(out, ast.Part{Kind: ast.PartLiteral, Literal: p.literal})

		case ppDigit:
			out = append(out, ast.Part{Kind: ast.PartDigit, Placeholder: p.ph, N: p.n})

		case ppDecimalPoint:
			out = append(out, ast.Part{Kind: ast.PartDecimalPoint})

		case ppThousands:
			out = append(out, ast.Part{Kind: ast.PartThousands})

		case ppPercent:
			out = append(out, ast.Part{Kind: ast.PartPercent})

		case ppScientific:
			out = append(out, ast.Part{
				Kind:               ast.PartScientific,
				ScientificUpper:    p.scientificUpper,
				ScientificShowPlus: p.scientificShowPlus,
			})

		case ppDatePart:
			out = append(out, ast.Part{Kind: ast.PartDatePart, DateField: p.dateField, N: p.n})

		case ppAmPm:
			out = append(out, ast.Part{Kind: ast.PartAmPm, AmPm: p.ampm})

		case ppElapsed:
			out = append(out, ast.Part{Kind: ast.PartElapsed, Elapsed: p.elapsedUnit, ElapsedWidth: p.elapsedWidth})

		case ppText:
			out = append(out, ast.Part{Kind: ast.PartText})

		case ppFill:
			out = append(out, ast.Part{Kind: ast.PartFill, FillChar: p.fillChar})

		case ppSkip:
			out = append(out, ast.Part{Kind: ast.PartSkip, SkipChar: p.skipChar})

		case ppLocale:
			out = append(out, ast.Part{
				Kind:           ast.PartLocale,
				LocaleCurrency: p.currency,
				HasCurrency:    p.hasCurrency,
				LocaleLCID:     p.lcid,
				HasLCID:        p.hasLCID,
			})

		case ppHijriMarker:
			out = append(out, ast.Part{Kind: ast.PartHijriMarker})

		case ppFraction:
			out = append(out, ast.Part{
				Kind:                    ast.PartFraction,
				FractionIntegerDigits:   p.fracIntegerDigits,
				FractionNumeratorDigits: p.fracNumeratorDigits,
				FractionDenominator:     p.fracDenominator,
			})

		case ppSlash:
			out = append(out, ast.Part{Kind: ast.PartLiteral, Literal: "/"})

		case ppPendingM:
			// Unreachable: resolveMinutes eliminates every ppPendingM
			// entry before lower is called.
		}
	}
	return out
}
