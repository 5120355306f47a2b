package dateserial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCivil_LeapYearBug(t *testing.T) {
	c := Civil(60, Epoch1900)
	assert.Equal(t, Civil{Year: 1900, Month: 2, Day: 29, Weekday: 3}, c)
}

func TestCivil_SerialOne(t *testing.T) {
	c := Civil(61, Epoch1900)
	assert.Equal(t, 1900, c.Year)
	assert.Equal(t, 3, c.Month)
	assert.Equal(t, 1, c.Day)
}

func TestCivil_DayZero(t *testing.T) {
	c := Civil(0, Epoch1900)
	assert.Equal(t, Civil{Year: 1900, Month: 1, Day: 0, Weekday: 6}, c)
}

func TestCivil_KnownDate(t *testing.T) {
	// 46031 is 2026-01-09 in the 1900 system (spec worked example).
	c := Civil(46031, Epoch1900)
	assert.Equal(t, 2026, c.Year)
	assert.Equal(t, 1, c.Month)
	assert.Equal(t, 9, c.Day)
}

func TestCivil_1904System(t *testing.T) {
	c := Civil(0, Epoch1904)
	assert.Equal(t, 1904, c.Year)
	assert.Equal(t, 1, c.Month)
	assert.Equal(t, 1, c.Day)
}

func TestCivil_1904RoundTripsAgainst1900Offset(t *testing.T) {
	// The 1904 system is the 1900 system shifted by 1462 days.
	c1900 := Civil(46031, Epoch1900)
	c1904 := Civil(46031-1462, Epoch1904)
	assert.Equal(t, c1900.Year, c1904.Year)
	assert.Equal(t, c1900.Month, c1904.Month)
	assert.Equal(t, c1900.Day, c1904.Day)
}

func TestHijri_SpecialCaseDayZero(t *testing.T) {
	greg := Civil(0, Epoch1900)
	h := Hijri(0, greg)
	assert.Equal(t, 1317, h.Year)
	assert.Equal(t, 8, h.Month)
	assert.Equal(t, 29, h.Day)
}

func TestHijri_SpecialCaseDay60(t *testing.T) {
	greg := Civil(60, Epoch1900)
	h := Hijri(60, greg)
	assert.Equal(t, 1317, h.Year)
	assert.Equal(t, 10, h.Month)
	assert.Equal(t, 29, h.Day)
}

func TestHijri_FlatYearOffset(t *testing.T) {
	greg := Civil(46031, Epoch1900)
	h := Hijri(46031, greg)
	assert.Equal(t, greg.Year-581, h.Year)
	assert.Equal(t, greg.Month, h.Month)
	assert.Equal(t, greg.Day, h.Day)
}

func TestSerial_RoundTripsThroughCivil(t *testing.T) {
	for _, days := range []int{1, 59, 61, 46031, 2_958_465} {
		c := Civil(days, Epoch1900)
		assert.Equal(t, days, Serial(c.Year, c.Month, c.Day, Epoch1900), "days=%d", days)
	}
}

func TestSerial_1904System(t *testing.T) {
	assert.Equal(t, 0, Serial(1904, 1, 1, Epoch1904))
	c := Civil(1000, Epoch1904)
	assert.Equal(t, 1000, Serial(c.Year, c.Month, c.Day, Epoch1904))
}
