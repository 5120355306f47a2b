// Package fracrender implements the Fraction section of the format path:
// continued-fraction best approximation (or a fixed denominator), integer
// part roll-over, and the numerator/denominator padding rules. It never
// looks at dates or plain numbers.
package fracrender

import (
	"math"
	"strconv"
	"strings"

	"github.com/gossf/ssf/internal/ast"
)

// Render renders absValue through sec, which must carry exactly one
// PartFraction element (format_type == Fraction). prependMinus mirrors
// numrender.Render: a leading '-' ahead of the first emitted character.
func Render(sec ast.Section, absValue float64, prependMinus bool) string {
	var frac ast.Part
	for _, p := range sec.Parts {
		if p.Kind == ast.PartFraction {
			frac = p
			break
		}
	}

	whole, fractional := math.Modf(absValue)
	intPart := int64(whole)

	var num, denom int64
	switch frac.FractionDenominator.Kind {
	case ast.DenomFixed:
		k := int64(frac.FractionDenominator.Value)
		num = int64(math.Floor(fractional*float64(k) + 0.5))
		denom = k
		if denom != 0 && num == denom {
			num = 0
			intPart++
		}
	default:
		maxDenom := int64(math.Pow(10, float64(frac.FractionDenominator.Digits))) - 1
		if maxDenom > 9_999_999 {
			maxDenom = 9_999_999
		}
		if maxDenom < 1 {
			maxDenom = 1
		}
		num, denom = bestApprox(fractional, maxDenom)
	}

	// Improper fraction: no literal space separated the integer digits
	// from the numerator group, so any whole part folds into the
	// numerator instead of rendering separately.
	improper := frac.FractionIntegerDigits == 0
	if improper {
		num += intPart * denom
		intPart = 0
	}

	numStr := strconv.FormatInt(num, 10)
	denomStr := strconv.FormatInt(denom, 10)
	w := len(numStr)
	if len(denomStr) > w {
		w = len(denomStr)
	}
	if w > 7 {
		w = 7
	}
	numStr = padLeft(numStr, w)
	denomStr = padRight(denomStr, w)

	var b strings.Builder
	if prependMinus {
		b.WriteByte('-')
	}
	if !improper && intPart != 0 {
		b.WriteString(strconv.FormatInt(intPart, 10))
		b.WriteByte(' ')
	}
	b.WriteString(numStr)
	b.WriteByte('/')
	b.WriteString(denomStr)
	return b.String()
}

// bestApprox finds the rational number with denominator <= maxDenom
// closest to n, via Eppstein's continued-fraction algorithm.
func bestApprox(n float64, maxDenom int64) (num, denom int64) {
	var m [2][2]int64
	m[0][0], m[1][1] = 1, 1
	x := n
	var ai int64

	for ai = int64(x); m[1][0]*ai+m[1][1] < maxDenom; ai = int64(x) {
		t := m[0][0]*ai + m[0][1]
		m[0][1] = m[0][0]
		m[0][0] = t
		t = m[1][0]*ai + m[1][1]
		m[1][1] = m[1][0]
		m[1][0] = t
		if x == float64(ai) {
			break
		}
		x = 1 / (x - float64(ai))
		if x > math.MaxFloat64 {
			break
		}
	}

	num, denom = m[0][0], m[1][0]
	if denom == 0 {
		return 0, 1
	}
	err1 := n - float64(m[0][0])/float64(m[1][0])
	if err1 == 0 {
		return num, denom
	}

	ai = (maxDenom - m[1][1]) / m[1][0]
	m[0][0] = m[0][0]*ai + m[0][1]
	m[1][0] = m[1][0]*ai + m[1][1]
	err2 := n - float64(m[0][0])/float64(m[1][0])

	if math.Abs(err1) < math.Abs(err2) {
		return num, denom
	}
	return m[0][0], m[1][0]
}

func padLeft(s string, w int) string {
	for len(s) < w {
		s = " " + s
	}
	return s
}

func padRight(s string, w int) string {
	for len(s) < w {
		s = s + " "
	}
	return s
}
