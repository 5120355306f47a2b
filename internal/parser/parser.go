// Package parser consumes a lexer.Token stream into an ast.Format: up to
// four sections, each with its condition, color, ordered parts, and
// precomputed metadata. Section separation, bracket classification,
// date-letter coalescing, minute/month disambiguation, subsecond
// detection, and fraction repackaging all happen here — the format path
// never re-derives any of it.
package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/lexer"
)

// Error is a parse-time error with the byte offset at which it occurred.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return "ssf: parse error at byte " + strconv.Itoa(e.Pos) + ": " + e.Msg
}

const maxSections = 4

// Parse tokenizes and parses a raw format string into a Format.
func Parse(raw string) (*ast.Format, error) {
	if raw == "" {
		return nil, &Error{Pos: 0, Msg: "empty format string"}
	}
	toks, err := lexer.Lex(raw)
	if err != nil {
		return nil, errors.Wrap(err, "ssf: lex")
	}

	var sectionToks [][]lexer.Token
	var cur []lexer.Token
	for _, t := range toks {
		if t.Kind == lexer.KindSemicolon {
			sectionToks = append(sectionToks, cur)
			cur = nil
			continue
		}
		if t.Kind == lexer.KindEOF {
			continue
		}
		cur = append(cur, t)
	}
	sectionToks = append(sectionToks, cur)

	if len(sectionToks) > maxSections {
		sectionToks = sectionToks[:maxSections]
	}

	sections := make([]ast.Section, 0, len(sectionToks))
	for _, st := range sectionToks {
		sec, err := parseSection(st)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	return &ast.Format{Sections: sections, Raw: raw}, nil
}

// ── intermediate (pre-lowering) representation ──────────────────────────

type ppKind int

const (
	ppLiteral ppKind = iota
	ppDigit
	ppDecimalPoint
	ppThousands
	ppPercent
	ppSlash
	ppScientific
	ppDatePart
	ppPendingM // an m-run whose Month/Minute class isn't resolved yet
	ppAmPm
	ppElapsed
	ppText
	ppFill
	ppSkip
	ppLocale
	ppHijriMarker
	ppFraction
)

type prePart struct {
	kind ppKind

	literal string

	ph ast.Placeholder
	n  int

	dateField ast.DatePart

	ampm ast.AmPmStyle

	elapsedUnit  ast.ElapsedUnit
	elapsedWidth int

	fillChar byte
	skipChar byte

	currency    string
	hasCurrency bool
	lcid        uint32
	hasLCID     bool

	scientificUpper    bool
	scientificShowPlus bool

	fracIntegerDigits   int
	fracNumeratorDigits int
	fracDenominator     ast.Denominator
	hasDenominator      bool
}

// scanDenominator looks ahead from index start for the token run forming
// a fraction denominator: digit placeholders (0, #, ?) or literal digit
// characters (1-9, and 0 when adjacent to another digit). A run
// containing '#' or '?' anywhere is UpToDigits; a run of only 0-9
// characters is Fixed at the literal numeric value. Returns ok == false
// if no digit-like token begins at start.
func scanDenominator(toks []lexer.Token, start int) (ast.Denominator, int, bool) {
	j := start
	onlyDigits := true
	var digits strings.Builder
	count := 0
loop:
	for j < len(toks) {
		t := toks[j]
		switch {
		case t.Kind == lexer.KindDigitHash || t.Kind == lexer.KindDigitQuestion:
			onlyDigits = false
			count++
			j++
		case t.Kind == lexer.KindDigitZero:
			digits.WriteByte('0')
			count++
			j++
		case t.Kind == lexer.KindLiteralChar && len(t.Value) == 1 && t.Value[0] >= '1' && t.Value[0] <= '9':
			digits.WriteString(t.Value)
			count++
			j++
		default:
			break loop
		}
	}
	if count == 0 {
		return ast.Denominator{}, 0, false
	}
	if onlyDigits {
		v, err := strconv.Atoi(digits.String())
		if err != nil || v == 0 {
			return ast.Denominator{Kind: ast.DenomUpToDigits, Digits: capInt(count, 7)}, count, true
		}
		if v > 9_999_999 {
			v = 9_999_999
		}
		return ast.Denominator{Kind: ast.DenomFixed, Value: v}, count, true
	}
	return ast.Denominator{Kind: ast.DenomUpToDigits, Digits: capInt(count, 7)}, count, true
}

func parseSection(toks []lexer.Token) (ast.Section, error) {
	var sec ast.Section
	var pre []prePart

	i := 0
	for i < len(toks) {
		t := toks[i]
		switch t.Kind {

		case lexer.KindLBracket:
			content, consumed, err := readBracketContent(toks, i)
			if err != nil {
				return sec, err
			}
			applyBracket(&sec, &pre, content)
			i += consumed

		case lexer.KindDigitZero, lexer.KindDigitHash, lexer.KindDigitQuestion:
			ph := placeholderOf(t.Kind)
			n := 1
			j := i + 1
			for j < len(toks) && toks[j].Kind == t.Kind {
				n++
				j++
			}
			pre = append(pre, prePart{kind: ppDigit, ph: ph, n: n})
			i = j

		case lexer.KindDecimalPoint:
			pre = append(pre, prePart{kind: ppDecimalPoint})
			i++

		case lexer.KindThousands:
			pre = append(pre, prePart{kind: ppThousands})
			i++

		case lexer.KindPercent:
			pre = append(pre, prePart{kind: ppPercent})
			i++

		case lexer.KindAt:
			pre = append(pre, prePart{kind: ppText})
			i++

		case lexer.KindSlash:
			denom, consumed, ok := scanDenominator(toks, i+1)
			if ok {
				pre = append(pre, prePart{kind: ppSlash, hasDenominator: true, fracDenominator: denom})
				i += 1 + consumed
			} else {
				pre = append(pre, prePart{kind: ppSlash})
				i++
			}

		case lexer.KindExponent:
			upper := t.Value == "E"
			if i+1 < len(toks) && (toks[i+1].Kind == lexer.KindPlus || toks[i+1].Kind == lexer.KindMinus) {
				showPlus := toks[i+1].Kind == lexer.KindPlus
				pre = append(pre, prePart{kind: ppScientific, scientificUpper: upper, scientificShowPlus: showPlus})
				i += 2
			} else {
				pre = mergeLiteral(pre, t.Value)
				i++
			}

		case lexer.KindDateLetter:
			letter := lowerLetter(t.Value[0])
			n := 1
			j := i + 1
			for j < len(toks) && toks[j].Kind == lexer.KindDateLetter && lowerLetter(toks[j].Value[0]) == letter {
				n++
				j++
			}
			pre = append(pre, dateRunPart(letter, n))
			i = j

		case lexer.KindAmPm:
			pre = append(pre, prePart{kind: ppAmPm, ampm: ampmStyleOf(t.Value)})
			i++

		case lexer.KindEscape:
			pre = append(pre, prePart{kind: ppLiteral, literal: t.Value})
			i++

		case lexer.KindQuoted:
			pre = append(pre, prePart{kind: ppLiteral, literal: t.Value})
			i++

		case lexer.KindFill:
			pre = append(pre, prePart{kind: ppFill, fillChar: t.Value[0]})
			i++

		case lexer.KindSkip:
			pre = append(pre, prePart{kind: ppSkip, skipChar: t.Value[0]})
			i++

		case lexer.KindPlus:
			pre = append(pre, prePart{kind: ppLiteral, literal: "+"})
			i++

		case lexer.KindMinus:
			pre = append(pre, prePart{kind: ppLiteral, literal: "-"})
			i++

		case lexer.KindLiteralChar:
			pre = mergeLiteral(pre, t.Value)
			i++

		default:
			i++
		}
	}

	pre = resolveMinutes(pre)
	pre = mergeSubSeconds(pre)
	pre = mergeFraction(pre)

	sec.Parts = lower(pre)
	sec.Meta = computeMetadata(sec)
	return sec, nil
}

func lowerLetter(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func placeholderOf(k lexer.Kind) ast.Placeholder {
	switch k {
	case lexer.KindDigitZero:
		return ast.Zero
	case lexer.KindDigitHash:
		return ast.Hash
	default:
		return ast.Question
	}
}

// mergeLiteral appends s to the previous prePart if it is already a
// literal run, otherwise starts a new one. This keeps consecutive
// ordinary characters ("(", ":", " ", currency symbols, ...) as a single
// Literal part the way a hand-written lexer naturally would.
func mergeLiteral(pre []prePart, s string) []prePart {
	if n := len(pre); n > 0 && pre[n-1].kind == ppLiteral {
		pre[n-1].literal += s
		return pre
	}
	return append(pre, prePart{kind: ppLiteral, literal: s})
}

func dateRunPart(letter byte, n int) prePart {
	switch letter {
	case 'y':
		switch {
		case n <= 2:
			return prePart{kind: ppDatePart, dateField: ast.Year2}
		case n == 3:
			return prePart{kind: ppDatePart, dateField: ast.Year3}
		default:
			return prePart{kind: ppDatePart, dateField: ast.Year4}
		}
	case 'm':
		// Deferred: resolved to Month* or Minute* by resolveMinutes.
		return prePart{kind: ppPendingM, n: n}
	case 'd':
		switch n {
		case 1:
			return prePart{kind: ppDatePart, dateField: ast.Day}
		case 2:
			return prePart{kind: ppDatePart, dateField: ast.Day2}
		case 3:
			return prePart{kind: ppDatePart, dateField: ast.DayAbbr}
		default:
			return prePart{kind: ppDatePart, dateField: ast.DayFull}
		}
	case 'h':
		if n == 1 {
			return prePart{kind: ppDatePart, dateField: ast.Hour}
		}
		return prePart{kind: ppDatePart, dateField: ast.Hour2}
	case 's':
		if n == 1 {
			return prePart{kind: ppDatePart, dateField: ast.Second}
		}
		return prePart{kind: ppDatePart, dateField: ast.Second2}
	}
	return prePart{kind: ppLiteral, literal: strings.Repeat(string(letter), n)}
}

func monthDateField(n int) ast.DatePart {
	switch n {
	case 1:
		return ast.Month
	case 2:
		return ast.Month2
	case 3:
		return ast.MonthAbbr
	case 4:
		return ast.MonthFull
	default:
		return ast.MonthLetter
	}
}

func minuteDateField(n int) ast.DatePart {
	if n == 1 {
		return ast.Minute
	}
	return ast.Minute2
}

func ampmStyleOf(raw string) ast.AmPmStyle {
	switch raw {
	case "AM/PM":
		return ast.AmPmUpper
	case "am/pm":
		return ast.AmPmLower
	case "A/P":
		return ast.AmPmShortUpper
	default:
		return ast.AmPmShortLower
	}
}

// resolveMinutes decides each pending m-run's class: Minute* iff the
// nearest preceding date-class part (skipping literals) is an Hour*
// (regular or elapsed), or the nearest following is a Second* (regular
// or elapsed); otherwise Month*.
func resolveMinutes(pre []prePart) []prePart {
	isHourClass := func(p prePart) bool {
		if p.kind == ppDatePart && (p.dateField == ast.Hour || p.dateField == ast.Hour2) {
			return true
		}
		if p.kind == ppElapsed && p.elapsedUnit == ast.ElapsedHours {
			return true
		}
		return false
	}
	isSecondClass := func(p prePart) bool {
		if p.kind == ppDatePart && (p.dateField == ast.Second || p.dateField == ast.Second2) {
			return true
		}
		if p.kind == ppElapsed && p.elapsedUnit == ast.ElapsedSeconds {
			return true
		}
		return false
	}
	isDateClass := func(p prePart) bool {
		return p.kind == ppDatePart || p.kind == ppElapsed || p.kind == ppPendingM
	}

	for i := range pre {
		if pre[i].kind != ppPendingM {
			continue
		}
		minute := false
		for j := i - 1; j >= 0; j-- {
			if pre[j].kind == ppLiteral {
				continue
			}
			if !isDateClass(pre[j]) {
				break
			}
			minute = isHourClass(pre[j])
			break
		}
		if !minute {
			for j := i + 1; j < len(pre); j++ {
				if pre[j].kind == ppLiteral {
					continue
				}
				if !isDateClass(pre[j]) {
					break
				}
				minute = isSecondClass(pre[j])
				break
			}
		}
		if minute {
			pre[i] = prePart{kind: ppDatePart, dateField: minuteDateField(pre[i].n)}
		} else {
			pre[i] = prePart{kind: ppDatePart, dateField: monthDateField(pre[i].n)}
		}
	}
	return pre
}

// mergeSubSeconds folds a Second(2) + DecimalPoint + digit-run triple
// into a single SubSecond part immediately following the seconds part.
func mergeSubSeconds(pre []prePart) []prePart {
	out := make([]prePart, 0, len(pre))
	for i := 0; i < len(pre); i++ {
		out = append(out, pre[i])
		isSecond := pre[i].kind == ppDatePart && (pre[i].dateField == ast.Second || pre[i].dateField == ast.Second2)
		if isSecond && i+2 < len(pre) && pre[i+1].kind == ppDecimalPoint && pre[i+2].kind == ppDigit {
			n := pre[i+2].n
			if n > 9 {
				n = 9
			}
			out = append(out, prePart{kind: ppDatePart, dateField: ast.SubSecond, n: n})
			i += 2
		}
	}
	return out
}

// mergeFraction repackages the numeric portion around a bare '/' into a
// single Fraction part, provided digit placeholders surround it and the
// section carries no date-class parts. Otherwise the slash is literal.
func mergeFraction(pre []prePart) []prePart {
	literalizeSlash := func() []prePart {
		out := make([]prePart, 0, len(pre))
		for _, p := range pre {
			if p.kind == ppSlash {
				out = mergeLiteralPP(out, "/")
				continue
			}
			out = append(out, p)
		}
		return out
	}

	slashIdx := -1
	hasDateClass := false
	for i, p := range pre {
		switch p.kind {
		case ppSlash:
			if slashIdx == -1 {
				slashIdx = i
			}
		case ppDatePart, ppElapsed, ppAmPm, ppPendingM:
			hasDateClass = true
		}
	}
	if slashIdx == -1 || hasDateClass || !pre[slashIdx].hasDenominator {
		return literalizeSlash()
	}

	// Numerator run is the digit run immediately before the slash; the
	// denominator was already consumed by scanDenominator during the
	// token scan and lives on the ppSlash entry itself.
	numIdx := slashIdx - 1
	if numIdx < 0 || pre[numIdx].kind != ppDigit {
		return literalizeSlash()
	}

	// An optional integer run precedes the numerator, separated from it
	// by a single literal space; its absence makes the fraction improper
	// (the numerator run itself carries the whole fractional value).
	intDigits := 0
	consumeFrom := numIdx
	if numIdx-2 >= 0 && pre[numIdx-1].kind == ppLiteral && strings.TrimSpace(pre[numIdx-1].literal) == "" &&
		pre[numIdx-2].kind == ppDigit {
		intDigits = pre[numIdx-2].n
		consumeFrom = numIdx - 2
	}

	out := make([]prePart, 0, len(pre))
	out = append(out, pre[:consumeFrom]...)
	out = append(out, prePart{
		kind:                ppFraction,
		fracIntegerDigits:   intDigits,
		fracNumeratorDigits: pre[numIdx].n,
		fracDenominator:     pre[slashIdx].fracDenominator,
	})
	out = append(out, pre[slashIdx+1:]...)
	return out
}

func capInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func mergeLiteralPP(pre []prePart, s string) []prePart {
	if n := len(pre); n > 0 && pre[n-1].kind == ppLiteral {
		pre[n-1].literal += s
		return pre
	}
	return append(pre, prePart{kind: ppLiteral, literal: s})
}
