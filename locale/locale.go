// Package locale holds the fixed, indexed tables the renderers use to turn
// parsed date/time and number parts into locale-flavored text: separators,
// the currency symbol, AM/PM strings, and month/weekday names. These are
// plain data, not a pluggable i18n bundle — a format string only ever
// selects among them by position (month index, weekday index), so there is
// no case for a message-catalog library here.
package locale

// Locale is a complete set of display strings and separators for one
// culture. The zero value is not meaningful; use EnUS or construct a
// Locale with every field populated.
type Locale struct {
	DecimalSeparator   string
	ThousandsSeparator string
	CurrencySymbol     string

	AmPmUpper      [2]string // [AM, PM]
	AmPmLower      [2]string
	AmPmShortUpper [2]string // [A, P]
	AmPmShortLower [2]string

	MonthsShort [12]string
	MonthsLong  [12]string

	WeekdaysShort [7]string // index 0 = Sunday
	WeekdaysLong  [7]string
}

// EnUS is the default locale used when an Options value carries none.
var EnUS = Locale{
	DecimalSeparator:   ".",
	ThousandsSeparator: ",",
	CurrencySymbol:     "$",

	AmPmUpper:      [2]string{"AM", "PM"},
	AmPmLower:      [2]string{"am", "pm"},
	AmPmShortUpper: [2]string{"A", "P"},
	AmPmShortLower: [2]string{"a", "p"},

	MonthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	MonthsLong: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},

	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysLong: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
}

// MonthLetter returns the single-letter month abbreviation used by the
// "mmmmm" token (J, F, M, A, M, J, J, A, S, O, N, D), which is derived
// rather than stored since it is the same rule for every locale this
// package carries.
func (l Locale) MonthLetter(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return string(l.MonthsLong[month-1][0])
}
