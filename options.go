package ssf

import (
	"github.com/gossf/ssf/internal/dateserial"
	"github.com/gossf/ssf/locale"
)

// DateSystem selects which serial-to-calendar epoch a Format interprets
// date/time values against.
type DateSystem int

const (
	// Date1900 is the default Excel/Windows epoch (serial 1 = 1900-01-01,
	// with the inherited Lotus 1-2-3 leap-year bug at serial 60).
	Date1900 DateSystem = iota
	// Date1904 is the epoch historically used by Excel for Mac (serial 0
	// = 1904-01-01, no leap-year bug).
	Date1904
)

func (d DateSystem) epoch() dateserial.Epoch {
	if d == Date1904 {
		return dateserial.Epoch1904
	}
	return dateserial.Epoch1900
}

// Options configures a single Format/TryFormat call.
type Options struct {
	DateSystem DateSystem
	Locale     locale.Locale
}

// DefaultOptions is en-US under the 1900 date system, used whenever a
// caller does not supply Options explicitly.
func DefaultOptions() Options {
	return Options{DateSystem: Date1900, Locale: locale.EnUS}
}

func (o Options) locale() locale.Locale {
	if o.Locale == (locale.Locale{}) {
		return locale.EnUS
	}
	return o.Locale
}
