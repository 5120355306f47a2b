package parser

import (
	"strconv"
	"strings"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/lexer"
)

// readBracketContent reads the literal content between toks[i] (an
// LBracket) and its matching RBracket, returning the content string and
// the number of tokens consumed (including both brackets).
func readBracketContent(toks []lexer.Token, i int) (string, int, error) {
	var b strings.Builder
	j := i + 1
	for j < len(toks) && toks[j].Kind != lexer.KindRBracket {
		b.WriteString(toks[j].Value)
		j++
	}
	if j >= len(toks) {
		return "", 0, &Error{Pos: toks[i].Pos, Msg: "unterminated bracket"}
	}
	return b.String(), j - i + 1, nil
}

var namedColors = map[string]string{
	"black": "Black", "blue": "Blue", "cyan": "Cyan", "green": "Green",
	"magenta": "Magenta", "red": "Red", "white": "White", "yellow": "Yellow",
}

// applyBracket classifies one bracket group's content per spec §4.2 (a)
// through (f) and mutates sec/pre accordingly.
func applyBracket(sec *ast.Section, pre *[]prePart, content string) {
	lc := strings.ToLower(content)

	// (a) named color or ColorN.
	if name, ok := namedColors[lc]; ok {
		sec.Color = &ast.Color{Named: name}
		return
	}
	if strings.HasPrefix(lc, "color") {
		if n, err := strconv.Atoi(lc[5:]); err == nil && n >= 1 && n <= 56 {
			sec.Color = &ast.Color{Indexed: n}
			return
		}
	}

	// (b) condition.
	if cond, ok := parseCondition(content); ok {
		if sec.Condition == nil {
			sec.Condition = &cond
		}
		return
	}

	// (c) lone elapsed markers.
	if unit, width, ok := parseElapsed(content); ok {
		*pre = append(*pre, prePart{kind: ppElapsed, elapsedUnit: unit, elapsedWidth: width})
		return
	}

	// (d) locale escape.
	if strings.HasPrefix(content, "$") {
		currency, hasCurrency, lcid, hasLCID := parseLocale(content)
		*pre = append(*pre, prePart{
			kind: ppLocale, currency: currency, hasCurrency: hasCurrency,
			lcid: lcid, hasLCID: hasLCID,
		})
		return
	}

	// (e) calendar marker.
	if lc == "b1" {
		sec.Meta.IsHijri = false
		*pre = append(*pre, prePart{kind: ppHijriMarker})
		return
	}
	if lc == "b2" {
		sec.Meta.IsHijri = true
		*pre = append(*pre, prePart{kind: ppHijriMarker})
		return
	}

	// (f) fallback: literal text, brackets stripped.
	*pre = mergeLiteralPP(*pre, content)
}

var condOps = []struct {
	prefix string
	op     ast.ConditionOp
}{
	{">=", ast.OpGE},
	{"<=", ast.OpLE},
	{"<>", ast.OpNE},
	{">", ast.OpGT},
	{"<", ast.OpLT},
	{"=", ast.OpEQ},
}

func parseCondition(content string) (ast.Condition, bool) {
	for _, c := range condOps {
		if strings.HasPrefix(content, c.prefix) {
			rest := strings.TrimSpace(content[len(c.prefix):])
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return ast.Condition{}, false
			}
			return ast.Condition{Op: c.op, Threshold: v}, true
		}
	}
	return ast.Condition{}, false
}

func parseElapsed(content string) (ast.ElapsedUnit, int, bool) {
	if content == "" {
		return 0, 0, false
	}
	target := byte(0)
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != 'h' && c != 'm' && c != 's' {
			return 0, 0, false
		}
		if target == 0 {
			target = c
		} else if c != target {
			return 0, 0, false
		}
	}
	switch target {
	case 'h':
		return ast.ElapsedHours, len(content), true
	case 'm':
		return ast.ElapsedMinutes, len(content), true
	case 's':
		return ast.ElapsedSeconds, len(content), true
	default:
		return 0, 0, false
	}
}

// parseLocale splits a "$currency-LCID" escape (without its surrounding
// brackets) on the last '-'. Either side may be absent.
func parseLocale(content string) (currency string, hasCurrency bool, lcid uint32, hasLCID bool) {
	rest := content[1:] // drop leading '$'
	idx := strings.LastIndexByte(rest, '-')
	if idx < 0 {
		if rest != "" {
			return rest, true, 0, false
		}
		return "", false, 0, false
	}
	currency = rest[:idx]
	lcidStr := rest[idx+1:]
	hasCurrency = currency != ""
	if v, err := strconv.ParseUint(lcidStr, 16, 32); err == nil {
		return currency, hasCurrency, uint32(v), true
	}
	return currency, hasCurrency, 0, false
}
