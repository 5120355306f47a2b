// Package daterender implements the Date/time section of the format path:
// serial decomposition into (H, M, S, subsecond), pre-rounding carry
// propagation, 1900/1904/Hijri calendar conversion, and token-by-token
// rendering against a locale's month/weekday/AM-PM tables. It never
// touches the Number or Fraction paths.
package daterender

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gossf/ssf/internal/ast"
	"github.com/gossf/ssf/internal/dateserial"
	"github.com/gossf/ssf/locale"
)

// Render renders serial (a non-negative day count with a fractional
// time-of-day component) through sec, which must be a DateTime-classified
// section. ok is false when serial falls outside the representable range,
// in which case the caller must emit the empty string.
func Render(sec ast.Section, serial float64, epoch dateserial.Epoch, loc locale.Locale) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	if serial < 0 || serial > dateserial.MaxSerial1900+0.99999 {
		return "", false
	}

	days := int(math.Trunc(serial))
	frac := serial - math.Trunc(serial)

	totalSeconds := frac * 86400
	secInt := int(math.Floor(totalSeconds + 0.5))
	sub := totalSeconds - math.Floor(totalSeconds)
	if secInt >= 86400 {
		secInt -= 86400
		days++
	}

	h := secInt / 3600
	m := (secInt % 3600) / 60
	s := secInt % 60

	h, m, s, sub, dayCarry := preRound(h, m, s, sub, sec.Meta.SmallestTimeUnit, sec.Meta.MaxSubSecondPrecision)
	days += dayCarry

	civil := dateserial.Civil(days, epoch)
	if sec.Meta.IsHijri {
		civil = dateserial.Hijri(days, civil)
	}

	hasAmPm := sec.Meta.HasAmPm
	displayHour := h
	isPM := h >= 12
	if hasAmPm {
		displayHour = ((h + 11) % 12) + 1
	}

	elapsedDays := int(math.Trunc(serial)) + dayCarry
	elapsedHours := elapsedDays*24 + h
	elapsedMinutes := elapsedHours*60 + m
	elapsedSeconds := elapsedMinutes*60 + s

	var b []byte
	for _, p := range sec.Parts {
		switch p.Kind {
		case ast.PartLiteral:
			b = append(b, p.Literal...)
		case ast.PartFill:
			b = append(b, p.FillChar)
		case ast.PartSkip:
			b = append(b, ' ')
		case ast.PartDatePart:
			b = append(b, renderDatePart(p, civil, displayHour, m, s, sub, loc)...)
		case ast.PartAmPm:
			b = append(b, renderAmPm(p.AmPm, isPM, loc)...)
		case ast.PartElapsed:
			b = append(b, renderElapsed(p, elapsedHours, elapsedMinutes, elapsedSeconds)...)
		case ast.PartHijriMarker:
			// The marker itself produces no output; it only flips
			// Meta.IsHijri, already consumed above.
		}
	}
	return string(b), true
}

// preRound applies spec step 3: collapse sub/s/m/h into the unit named by
// unit, propagating any carry upward through the clock fields and
// returning the extra whole days the carry produced.
func preRound(h, m, s int, sub float64, unit ast.SmallestTimeUnit, subPrecision int) (int, int, int, float64, int) {
	switch unit {
	case ast.UnitSubseconds:
		factor := math.Pow(10, float64(subPrecision))
		rounded := math.Floor(sub*factor+0.5) / factor
		if rounded >= 1 {
			rounded = 0
			s++
		}
		sub = rounded
	case ast.UnitSeconds:
		if sub >= 0.5 {
			s++
		}
		sub = 0
	case ast.UnitMinutes:
		if sub+float64(s)/60 >= 0.5 {
			m++
		}
		sub, s = 0, 0
	case ast.UnitHours:
		if (float64(m)+float64(s)/60)/60+sub/3600 >= 0.5 {
			h++
		}
		sub, s, m = 0, 0, 0
	}

	dayCarry := 0
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		h++
	}
	if h >= 24 {
		h -= 24
		dayCarry++
	}
	return h, m, s, sub, dayCarry
}

func renderDatePart(p ast.Part, c dateserial.Civil, displayHour, minute, second int, sub float64, loc locale.Locale) string {
	switch p.DateField {
	case ast.Year2:
		return fmt.Sprintf("%02d", c.Year%100)
	case ast.Year3:
		return fmt.Sprintf("%03d", c.Year)
	case ast.Year4:
		return fmt.Sprintf("%04d", c.Year)
	case ast.Month:
		return strconv.Itoa(c.Month)
	case ast.Month2:
		return fmt.Sprintf("%02d", c.Month)
	case ast.MonthAbbr:
		return loc.MonthsShort[clampIdx(c.Month-1, 12)]
	case ast.MonthFull:
		return loc.MonthsLong[clampIdx(c.Month-1, 12)]
	case ast.MonthLetter:
		return loc.MonthLetter(c.Month)
	case ast.Day:
		return strconv.Itoa(c.Day)
	case ast.Day2:
		return fmt.Sprintf("%02d", c.Day)
	case ast.DayAbbr:
		return loc.WeekdaysShort[clampIdx(c.Weekday, 7)]
	case ast.DayFull:
		return loc.WeekdaysLong[clampIdx(c.Weekday, 7)]
	case ast.Hour:
		return strconv.Itoa(displayHour)
	case ast.Hour2:
		return fmt.Sprintf("%02d", displayHour)
	case ast.Minute:
		return strconv.Itoa(minute)
	case ast.Minute2:
		return fmt.Sprintf("%02d", minute)
	case ast.Second:
		return strconv.Itoa(second)
	case ast.Second2:
		return fmt.Sprintf("%02d", second)
	case ast.SubSecond:
		if p.N <= 0 {
			return ""
		}
		return strconv.FormatFloat(sub, 'f', p.N, 64)[1:] // drop leading "0", keep "."
	}
	return ""
}

func renderAmPm(style ast.AmPmStyle, isPM bool, loc locale.Locale) string {
	idx := 0
	if isPM {
		idx = 1
	}
	switch style {
	case ast.AmPmUpper:
		return loc.AmPmUpper[idx]
	case ast.AmPmLower:
		return loc.AmPmLower[idx]
	case ast.AmPmShortUpper:
		return loc.AmPmShortUpper[idx]
	case ast.AmPmShortLower:
		return loc.AmPmShortLower[idx]
	}
	return ""
}

func renderElapsed(p ast.Part, hours, minutes, seconds int) string {
	var v int
	switch p.Elapsed {
	case ast.ElapsedHours:
		v = hours
	case ast.ElapsedMinutes:
		v = minutes
	case ast.ElapsedSeconds:
		v = seconds
	}
	s := strconv.Itoa(v)
	for len(s) < p.ElapsedWidth {
		s = "0" + s
	}
	return s
}

func clampIdx(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
