package ssf

import (
	"math"

	"github.com/go-chrono/chrono"
	"github.com/spf13/cast"

	"github.com/gossf/ssf/internal/dateserial"
)

// valueKind is the closed set of inputs the format path dispatches on.
type valueKind int

const (
	kindNumber valueKind = iota
	kindText
	kindBool
	kindEmpty
)

// value normalizes an arbitrary input into the closed (number, text, bool,
// empty) union spec.md §6 requires. chrono.LocalDate and
// chrono.LocalDateTime are accepted directly and converted to an Excel
// serial via the selected date system. A Go string is always text, even
// when it looks like a number. Every other type goes through spf13/cast:
// what it converts to a float64 (ints, uints, float32, ...) is a number,
// else what it converts to a string is text, else the value is empty.
type value struct {
	kind valueKind
	num  float64
	text string
	b    bool
}

func normalize(v any, epoch dateserial.Epoch) value {
	switch v := v.(type) {
	case nil:
		return value{kind: kindEmpty}
	case chrono.LocalDate:
		year, month, day := v.Date()
		return value{kind: kindNumber, num: float64(dateserial.Serial(year, int(month), day, epoch))}
	case chrono.LocalDateTime:
		date, t := v.Split()
		year, month, day := date.Date()
		hour, min, sec := t.Clock()
		serial := dateserial.Serial(year, int(month), day, epoch)
		frac := (float64(hour)*3600 + float64(min)*60 + float64(sec)) / 86400
		return value{kind: kindNumber, num: float64(serial) + frac}
	case bool:
		return value{kind: kindBool, b: v}
	case string:
		return value{kind: kindText, text: v}
	}

	if n, err := cast.ToFloat64E(v); err == nil {
		return value{kind: kindNumber, num: n}
	}
	if s, err := cast.ToStringE(v); err == nil {
		return value{kind: kindText, text: s}
	}
	return value{kind: kindEmpty}
}

// generalRender implements the type-mismatch / General fallback spec.md
// §6 mandates: numbers render as an integer when exact, else the
// shortest round-tripping float; booleans render as TRUE/FALSE; empty
// renders as "".
func (val value) generalRender() string {
	switch val.kind {
	case kindNumber:
		if math.IsNaN(val.num) || math.IsInf(val.num, 0) {
			return ""
		}
		if val.num == math.Trunc(val.num) && math.Abs(val.num) < 1e15 {
			return trimFloat(val.num, 0)
		}
		return trimFloat(val.num, -1)
	case kindBool:
		if val.b {
			return "TRUE"
		}
		return "FALSE"
	case kindText:
		return val.text
	default:
		return ""
	}
}
