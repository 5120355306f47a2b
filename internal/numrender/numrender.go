// Package numrender implements the Number section of the format path: the
// scaling, rounding, digit-emission, grouping, and splice-assembly steps
// that turn a finite float64 into the text a Number-classified ast.Section
// produces. It never looks at dates, fractions, or text sections.
package numrender

import (
	"math"
	"strconv"
	"strings"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/locale"
)

// Render renders absValue (the magnitude of the original value; sign is
// the caller's concern) through sec, which must be a Number-classified
// section. prependMinus requests a leading '-' ahead of the first emitted
// character, used when the original value was negative and no dedicated
// negative section absorbed the sign itself.
func Render(sec ast.Section, absValue float64, loc locale.Locale, prependMinus bool) string {
	meta := scanSection(sec.Parts)

	absValue *= math.Pow(100, float64(meta.percentCount))
	if meta.trailingScale > 0 {
		absValue /= math.Pow(1000, float64(meta.trailingScale))
	}

	var intStr, fracStr, expDigits string
	var expNegative bool
	switch {
	case meta.hasScientific:
		intStr, fracStr, expNegative, expDigits = renderScientific(absValue, meta, loc)
	case isIntegerFastPath(absValue, meta):
		intStr, fracStr = renderInteger(absValue, meta)
	default:
		intStr, fracStr = renderFixed(absValue, meta, loc)
	}

	if meta.hasGrouping && len(intStr) > 3 {
		intStr = insertThousands(intStr, loc.ThousandsSeparator)
	}

	var b strings.Builder
	if prependMinus {
		b.WriteByte('-')
	}

	intWritten := false
	fracWritten := false
	expWritten := false

	for i, p := range sec.Parts {
		switch p.Kind {
		case ast.PartLiteral:
			b.WriteString(p.Literal)
		case ast.PartPercent:
			b.WriteByte('%')
		case ast.PartSkip:
			b.WriteByte(' ')
		case ast.PartFill:
			b.WriteByte(p.FillChar)
		case ast.PartLocale:
			if p.HasCurrency {
				b.WriteString(p.LocaleCurrency)
			}
		case ast.PartDigit:
			if i > meta.scientificIdx && meta.scientificIdx >= 0 {
				if !expWritten {
					b.WriteString(expDigits)
					expWritten = true
				}
				continue
			}
			if meta.decimalIdx >= 0 && i > meta.decimalIdx {
				if !fracWritten {
					b.WriteString(fracStr)
					fracWritten = true
				}
				continue
			}
			if !intWritten {
				b.WriteString(intStr)
				intWritten = true
			}
		case ast.PartDecimalPoint:
			if fracStr != "" {
				b.WriteString(loc.DecimalSeparator)
			}
		case ast.PartThousands:
			// already folded into intStr's grouping; the token itself
			// emits nothing.
		case ast.PartScientific:
			upper := "E"
			if !p.ScientificUpper {
				upper = "e"
			}
			b.WriteString(upper)
			switch {
			case expNegative:
				b.WriteByte('-')
			case p.ScientificShowPlus:
				b.WriteByte('+')
			}
		}
	}

	return b.String()
}

type sectionMeta struct {
	percentCount  int
	hasGrouping   bool
	trailingScale int

	decimalIdx    int // index in sec.Parts of the first DecimalPoint, or -1
	scientificIdx int // index in sec.Parts of the Scientific marker, or -1

	intPlaceholders  []ast.Placeholder
	fracPlaceholders []ast.Placeholder
	expPlaceholders  []ast.Placeholder

	hasScientific bool
}

func scanSection(parts []ast.Part) sectionMeta {
	var m sectionMeta
	m.decimalIdx = -1
	m.scientificIdx = -1

	lastDigitIdx := -1
	for i, p := range parts {
		switch p.Kind {
		case ast.PartDigit:
			lastDigitIdx = i
		case ast.PartPercent:
			m.percentCount++
		case ast.PartDecimalPoint:
			if m.decimalIdx == -1 {
				m.decimalIdx = i
			}
		case ast.PartScientific:
			m.scientificIdx = i
			m.hasScientific = true
		}
	}

	for i, p := range parts {
		if p.Kind != ast.PartThousands {
			continue
		}
		switch {
		case i < lastDigitIdx:
			m.hasGrouping = true
		case i > lastDigitIdx:
			m.trailingScale++
		}
	}

	for i, p := range parts {
		if p.Kind != ast.PartDigit {
			continue
		}
		slots := make([]ast.Placeholder, p.N)
		for k := range slots {
			slots[k] = p.Placeholder
		}
		switch {
		case m.scientificIdx >= 0 && i > m.scientificIdx:
			m.expPlaceholders = append(m.expPlaceholders, slots...)
		case m.decimalIdx >= 0 && i > m.decimalIdx:
			m.fracPlaceholders = append(m.fracPlaceholders, slots...)
		default:
			m.intPlaceholders = append(m.intPlaceholders, slots...)
		}
	}
	return m
}

// maxSafeIntegerMagnitude is the largest magnitude a float64 can hold
// with every integer value below it still exactly representable (2^53).
const maxSafeIntegerMagnitude = 1 << 53

// isIntegerFastPath reports whether v can skip the float rounding path
// entirely: no fractional placeholders to fill, v is already a whole
// number, and it's small enough that int64(v) round-trips exactly.
func isIntegerFastPath(v float64, m sectionMeta) bool {
	return len(m.fracPlaceholders) == 0 && v < maxSafeIntegerMagnitude && v == math.Trunc(v)
}

// renderInteger is the integer counterpart to renderFixed: no rounding to
// a fractional width is needed, so the digit string comes straight from
// int64 formatting rather than a scale-round-format float detour. It
// shares emitInteger/emitFraction with the float path so the two agree on
// placeholder and grouping behavior.
func renderInteger(v float64, m sectionMeta) (intStr, fracStr string) {
	intStr = emitInteger(strconv.FormatInt(int64(v), 10), m.intPlaceholders)
	fracStr = emitFraction("", m.fracPlaceholders)
	return intStr, fracStr
}

// renderFixed handles the non-scientific, non-integer number path: round
// to the fractional placeholder count, then emit integer and fractional
// digit strings per the digit-emission rules.
func renderFixed(v float64, m sectionMeta, loc locale.Locale) (intStr, fracStr string) {
	d := len(m.fracPlaceholders)
	intDigits, fracDigits := roundToDigits(v, d)
	intStr = emitInteger(intDigits, m.intPlaceholders)
	fracStr = emitFraction(fracDigits, m.fracPlaceholders)
	return intStr, fracStr
}

// renderScientific normalizes v to a mantissa/exponent pair honoring the
// integer placeholder width (engineering-style grouping for width >= 2),
// renormalizing if rounding the mantissa carries into an extra digit.
func renderScientific(v float64, m sectionMeta, loc locale.Locale) (intStr, fracStr string, expNegative bool, expDigits string) {
	w := len(m.intPlaceholders)
	if w == 0 {
		w = 1
	}
	d := len(m.fracPlaceholders)

	exp := 0
	if v != 0 {
		exp = int(math.Floor(math.Log10(v)))
	}
	shift := w - 1

	for attempt := 0; attempt < 4; attempt++ {
		newExp := exp - shift
		mantissa := v
		if newExp != 0 {
			mantissa = v / math.Pow(10, float64(newExp))
		}
		intDigits, fracDigits := roundToDigits(mantissa, d)
		if len(intDigits) > shift+1 {
			exp = newExp + len(intDigits) - (shift + 1)
			continue
		}
		intStr = emitInteger(intDigits, m.intPlaceholders)
		fracStr = emitFraction(fracDigits, m.fracPlaceholders)
		expNegative = newExp < 0
		expDigits = padExponent(newExp, m.expPlaceholders)
		return intStr, fracStr, expNegative, expDigits
	}
	// Unreachable in practice; fall back to a single renormalization.
	intDigits, fracDigits := roundToDigits(v, d)
	return emitInteger(intDigits, m.intPlaceholders), emitFraction(fracDigits, m.fracPlaceholders), exp < 0, padExponent(exp, m.expPlaceholders)
}

// roundToDigits rounds the non-negative v half-away-from-zero to d
// fractional digits and returns the integer and fractional digit strings
// (fracStr always exactly d characters, zero-padded).
func roundToDigits(v float64, d int) (intDigits, fracDigits string) {
	factor := math.Pow(10, float64(d))
	scaled := math.Floor(v*factor + 0.5)
	digits := strconv.FormatFloat(scaled, 'f', 0, 64)
	for len(digits) <= d {
		digits = "0" + digits
	}
	split := len(digits) - d
	intDigits = digits[:split]
	fracDigits = digits[split:]
	if d == 0 {
		fracDigits = ""
	}
	intDigits = strings.TrimLeft(intDigits, "0")
	if intDigits == "" {
		intDigits = "0"
	}
	return intDigits, fracDigits
}

// emitInteger implements spec digit emission for the integer part: walk
// digits and placeholders right to left in lockstep; leftover source
// digits are always emitted; leftover placeholders on the left render per
// their own kind.
func emitInteger(digits string, phs []ast.Placeholder) string {
	if len(phs) == 0 {
		return digits
	}
	var out []byte
	di := len(digits) - 1
	pi := len(phs) - 1
	for di >= 0 || pi >= 0 {
		switch {
		case di >= 0 && pi >= 0:
			out = append(out, digits[di])
			di--
			pi--
		case di >= 0:
			out = append(out, digits[di])
			di--
		default:
			switch phs[pi] {
			case ast.Zero:
				out = append(out, '0')
			case ast.Question:
				out = append(out, ' ')
			case ast.Hash:
				// nothing emitted
			}
			pi--
		}
	}
	reverse(out)
	return string(out)
}

// emitFraction implements the spec's trailing-zero suppression: a
// contiguous run of zero-valued digits at the end of the string is
// dropped for Hash placeholders and blanked for Question placeholders;
// the run stops at the first non-zero digit or Zero placeholder.
func emitFraction(digits string, phs []ast.Placeholder) string {
	if len(digits) == 0 {
		return ""
	}
	suppressed := make([]bool, len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '0' {
			break
		}
		if i >= len(phs) || phs[i] == ast.Zero {
			break
		}
		suppressed[i] = true
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if !suppressed[i] {
			b.WriteByte(digits[i])
			continue
		}
		if i < len(phs) && phs[i] == ast.Question {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// padExponent zero-pads the magnitude of a signed exponent to at least the
// placeholder count recorded after the Scientific marker. The sign is
// rendered separately by the caller.
func padExponent(exp int, phs []ast.Placeholder) string {
	n := exp
	if n < 0 {
		n = -n
	}
	digits := strconv.Itoa(n)
	for len(digits) < len(phs) {
		digits = "0" + digits
	}
	return digits
}

func insertThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
