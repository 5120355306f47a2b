package ssf

import (
	"math"

	"go.uber.org/zap"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/daterender"
	"github.com/gossf/ssf/internal/fracrender"
	"github.com/gossf/ssf/internal/numrender"
	"github.com/gossf/ssf/internal/parser"
	"github.com/gossf/ssf/internal/selector"
	"github.com/gossf/ssf/internal/textrender"
)

// Format is a parsed number-format string, ready to render any number of
// values without re-parsing. It is safe for concurrent use — rendering
// never mutates the underlying *ast.Format.
type Format struct {
	ast *ast.Format
}

// Parse compiles a raw Excel-style format code (e.g. "#,##0.00;[Red]-#,##0.00")
// into a Format. The result is immutable and safe to share across
// goroutines; callers that format the same string repeatedly should
// Parse once and reuse it, or use the package-level FormatValue helper
// which does this for them via a bounded cache.
func Parse(raw string) (*Format, error) {
	f, err := parser.Parse(raw)
	if err != nil {
		return nil, newParseError(err)
	}
	return &Format{ast: f}, nil
}

// MustParse is like Parse but panics on error, for format strings that are
// compile-time constants.
func MustParse(raw string) *Format {
	f, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return f
}

// Sections returns the 1 to 4 semicolon-delimited sections this Format
// was parsed into.
func (f *Format) Sections() []ast.Section {
	return f.ast.Sections
}

// IsDateFormat reports whether any section renders as date/time.
func (f *Format) IsDateFormat() bool { return f.ast.IsDateFormat() }

// IsTextFormat reports whether the format's only active section is a bare
// text placeholder.
func (f *Format) IsTextFormat() bool { return f.ast.IsTextFormat() }

// IsPercentage reports whether any section contains a '%' token.
func (f *Format) IsPercentage() bool { return f.ast.IsPercentage() }

// HasColor reports whether any section carries a "[Color]" annotation.
func (f *Format) HasColor() bool { return f.ast.HasColor() }

// HasCondition reports whether any section carries an explicit "[cond]".
func (f *Format) HasCondition() bool { return f.ast.HasCondition() }

// Format renders value according to f and opts. It never returns an
// error: a boolean renders as TRUE/FALSE, while a date serial out of
// range, a non-finite number, or a nil or unconvertible value renders as
// the empty string. Use TryFormat to distinguish these cases.
func (f *Format) Format(val any, opts Options) string {
	s, _ := f.render(val, opts)
	return s
}

// TryFormat is the fallible counterpart to Format: alongside the same
// string it reports a *FormatError for the cases Format renders silently.
func (f *Format) TryFormat(val any, opts Options) (string, error) {
	return f.render(val, opts)
}

func (f *Format) render(val any, opts Options) (string, error) {
	epoch := opts.DateSystem.epoch()
	loc := opts.locale()
	v := normalize(val, epoch)

	switch v.kind {
	case kindText:
		res := selector.Select(f.ast, selector.KindText, 0)
		if res.Section.Meta.FormatType == ast.General {
			return v.text, nil
		}
		return textrender.Render(res.Section, v.text), nil
	case kindBool:
		return v.generalRender(), nil
	case kindEmpty:
		return "", newFormatError(ErrTypeMismatch, val)
	}

	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		currentLogger().Debug("ssf: format: non-finite value, falling back to General", zap.Float64("value", v.num))
		return v.generalRender(), newFormatError(ErrInvalidSerial, val)
	}

	res := selector.Select(f.ast, selector.KindNumber, v.num)
	sec := res.Section

	switch sec.Meta.FormatType {
	case ast.General:
		return v.generalRender(), nil
	case ast.DateTime:
		out, ok := daterender.Render(sec, v.num, epoch, loc)
		if !ok {
			currentLogger().Debug("ssf: format: date serial out of range, rendering empty string", zap.Float64("serial", v.num))
			return "", newFormatError(ErrDateOutOfRange, val)
		}
		return out, nil
	case ast.Fraction:
		return fracrender.Render(sec, math.Abs(v.num), res.PrependMinus), nil
	case ast.Text:
		return textrender.Render(sec, v.generalRender()), nil
	default:
		return numrender.Render(sec, math.Abs(v.num), loc, res.PrependMinus), nil
	}
}

// FormatValue parses formatString (using the package-level bounded cache
// so repeated calls with the same string skip re-parsing), then renders
// value with it. It is the convenience entry point for callers that don't
// need to hold onto a compiled Format themselves.
func FormatValue(val any, formatString string, opts Options) (string, error) {
	f, ok := sharedCache().get(formatString)
	if !ok {
		parsed, err := Parse(formatString)
		if err != nil {
			return "", err
		}
		f = parsed
		sharedCache().put(formatString, f)
	}
	return f.Format(val, opts), nil
}
