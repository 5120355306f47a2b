// Package ast defines the parsed representation of an Excel number-format
// string: a closed tagged union of Part kinds grouped into Sections, with
// per-section Metadata computed once at parse time.
//
// Every exported type here is immutable once a Parser returns it; nothing
// in this package allocates goroutines or touches the outside world.
package ast

// FormatType classifies a Section for dispatch purposes. The format path
// switches on this value instead of re-scanning Parts.
type FormatType int

const (
	General FormatType = iota
	Number
	DateTime
	Fraction
	Text
)

func (t FormatType) String() string {
	switch t {
	case General:
		return "General"
	case Number:
		return "Number"
	case DateTime:
		return "DateTime"
	case Fraction:
		return "Fraction"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Placeholder is a digit-position marker.
type Placeholder int

const (
	Zero     Placeholder = iota // '0' — mandatory, shows as 0
	Hash                        // '#' — optional, dropped when insignificant
	Question                    // '?' — optional, shows as a space
)

// DatePart enumerates the closed set of date/time tokens a Section can
// contain. SubSecond carries its digit count in Part.N.
type DatePart int

const (
	Year2 DatePart = iota
	Year3
	Year4
	Month
	Month2
	MonthAbbr
	MonthFull
	MonthLetter
	Day
	Day2
	DayAbbr
	DayFull
	Hour
	Hour2
	Minute
	Minute2
	Second
	Second2
	SubSecond
)

// AmPmStyle is the rendering style selected by an AM/PM token.
type AmPmStyle int

const (
	AmPmUpper      AmPmStyle = iota // AM/PM
	AmPmLower                       // am/pm
	AmPmShortUpper                  // A/P
	AmPmShortLower                  // a/p
)

// ElapsedUnit is the accumulating (non-modular) time field used by [h],
// [m], [s] style tokens.
type ElapsedUnit int

const (
	ElapsedHours ElapsedUnit = iota
	ElapsedMinutes
	ElapsedSeconds
)

// ConditionOp is one of the six comparison operators a bracketed section
// condition may use.
type ConditionOp int

const (
	OpGT ConditionOp = iota
	OpLT
	OpEQ
	OpGE
	OpLE
	OpNE
)

// Condition gates a Section to values matching Op against Threshold.
type Condition struct {
	Op        ConditionOp
	Threshold float64
}

// Matches reports whether v satisfies the condition.
func (c Condition) Matches(v float64) bool {
	switch c.Op {
	case OpGT:
		return v > c.Threshold
	case OpLT:
		return v < c.Threshold
	case OpEQ:
		return v == c.Threshold
	case OpGE:
		return v >= c.Threshold
	case OpLE:
		return v <= c.Threshold
	case OpNE:
		return v != c.Threshold
	default:
		return false
	}
}

// Color is either one of the eight named colors or an indexed palette
// entry (1..56). Named == "" indicates the indexed form is in use.
type Color struct {
	Named   string
	Indexed int
}

// DenomKind selects between a fixed fraction denominator and one bounded
// by a digit-count cap.
type DenomKind int

const (
	DenomUpToDigits DenomKind = iota
	DenomFixed
)

// Denominator describes the right-hand side of a Fraction part.
type Denominator struct {
	Kind   DenomKind
	Value  int // Kind == DenomFixed: the exact denominator (<= 9,999,999)
	Digits int // Kind == DenomUpToDigits: placeholder count (<= 7)
}

// PartKind is the tag of the Part union.
type PartKind int

const (
	PartLiteral PartKind = iota
	PartDigit
	PartDecimalPoint
	PartThousands
	PartPercent
	PartScientific
	PartFraction
	PartDatePart
	PartAmPm
	PartElapsed
	PartText
	PartFill
	PartSkip
	PartLocale
	PartHijriMarker
)

// Part is a single element of a Section's rendering program. It is a
// closed tagged union: exactly the fields relevant to Kind are populated,
// the rest are zero. Dispatch is by exhaustive switch on Kind, never by
// virtual method.
type Part struct {
	Kind PartKind

	// PartLiteral: literal text to emit verbatim (includes coalesced
	// literal runs, quoted strings, and escaped single characters).
	Literal string

	// PartDigit: the placeholder class and run length (number of
	// characters in the source, e.g. "00" -> Placeholder=Zero, N=2).
	Placeholder Placeholder
	N           int

	// PartScientific: case and sign display of the exponent marker. The
	// exponent's own zero-padding width is carried by the PartDigit run
	// immediately following this part, the same as any other digit slot.
	ScientificUpper    bool
	ScientificShowPlus bool

	// PartFraction: layout of the repackaged fraction slot.
	FractionIntegerDigits   int
	FractionNumeratorDigits int
	FractionDenominator     Denominator

	// PartDatePart: which calendar/clock field. When DateField ==
	// SubSecond, N holds the digit count (1..9).
	DateField DatePart

	// PartAmPm: rendering style.
	AmPm AmPmStyle

	// PartElapsed: accumulating field and the zero-pad width (the count
	// of placeholder letters inside the brackets, e.g. "[hh]" -> 2).
	Elapsed      ElapsedUnit
	ElapsedWidth int

	// PartFill / PartSkip: the single character argument.
	FillChar byte
	SkipChar byte

	// PartLocale: the "[$cur-LCID]" escape. Either may be absent.
	LocaleCurrency string
	HasCurrency    bool
	LocaleLCID     uint32
	HasLCID        bool
}

// SmallestTimeUnit drives the pre-rounding step of the date/time
// formatter (spec §4.5 step 3).
type SmallestTimeUnit int

const (
	UnitNone SmallestTimeUnit = iota
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitSubseconds
)

// Metadata is computed once during parsing and never recomputed by the
// format path.
type Metadata struct {
	HasAmPm               bool
	IsHijri               bool
	MaxSubSecondPrecision int // 0 when no SubSecond part is present
	HasElapsed            bool
	SmallestTimeUnit      SmallestTimeUnit
	FormatType            FormatType
}

// Section is one of up to four semicolon-delimited sub-formats.
type Section struct {
	Condition *Condition
	Color     *Color
	Parts     []Part
	Meta      Metadata
}

// HasFraction reports whether the section contains the single Fraction
// part a format_type == Fraction section is guaranteed to carry.
func (s Section) HasFraction() bool {
	for _, p := range s.Parts {
		if p.Kind == PartFraction {
			return true
		}
	}
	return false
}

// Format is the fully parsed, immutable representation of a format
// string: 1 to 4 Sections.
type Format struct {
	Sections []Section
	Raw      string
}

// IsDateFormat reports whether any section renders as date/time.
func (f *Format) IsDateFormat() bool {
	for _, s := range f.Sections {
		if s.Meta.FormatType == DateTime {
			return true
		}
	}
	return false
}

// IsTextFormat reports whether the format's only active section is a bare
// text placeholder section.
func (f *Format) IsTextFormat() bool {
	return len(f.Sections) == 1 && f.Sections[0].Meta.FormatType == Text
}

// IsPercentage reports whether any section contains a Percent part.
func (f *Format) IsPercentage() bool {
	for _, s := range f.Sections {
		for _, p := range s.Parts {
			if p.Kind == PartPercent {
				return true
			}
		}
	}
	return false
}

// HasColor reports whether any section carries a color annotation.
func (f *Format) HasColor() bool {
	for _, s := range f.Sections {
		if s.Color != nil {
			return true
		}
	}
	return false
}

// HasCondition reports whether any section carries an explicit [cond].
func (f *Format) HasCondition() bool {
	for _, s := range f.Sections {
		if s.Condition != nil {
			return true
		}
	}
	return false
}
