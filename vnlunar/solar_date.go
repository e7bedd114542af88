package vnlunar

import (
	"fmt"
	"time"

	"github.com/vietculture/vnlunar-calendar/internal/core"
)

// SolarDate is an immutable Gregorian/Julian calendar date: (Year, Month,
// Day). Dates on or after 1582-10-15 are interpreted in the Gregorian
// calendar; earlier dates are interpreted in the proleptic Julian
// calendar, matching the Tondering JDN formula (spec §4.1).
type SolarDate struct {
	Year, Month, Day int
}

// NewSolarDate validates and constructs a SolarDate.
func NewSolarDate(year, month, day int) (SolarDate, error) {
	if month < 1 || month > 12 {
		return SolarDate{}, fmt.Errorf("vnlunar.NewSolarDate(%d, %d, %d): %w", year, month, day, ErrInvalidDate)
	}
	maxDay := DaysInMonth(year, month)
	if day < 1 || day > maxDay {
		return SolarDate{}, fmt.Errorf("vnlunar.NewSolarDate(%d, %d, %d): %w", year, month, day, ErrInvalidDate)
	}
	return SolarDate{Year: year, Month: month, Day: day}, nil
}

// SolarDateFromTime extracts the calendar date component of t, ignoring
// time of day and input location.
func SolarDateFromTime(t time.Time) SolarDate {
	y, m, d := t.Date()
	return SolarDate{Year: y, Month: int(m), Day: d}
}

// SolarDateFromJDN reconstructs a SolarDate from a Julian Day Number.
func SolarDateFromJDN(jdn int64) SolarDate {
	y, m, d := core.YMDFromJDN(jdn)
	return SolarDate{Year: y, Month: m, Day: d}
}

// JDN returns the Julian Day Number of the date.
func (d SolarDate) JDN() int64 {
	return core.JDNFromYMD(d.Day, d.Month, d.Year)
}

// Time returns the date as a time.Time at midnight UTC.
func (d SolarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// ToLunar converts the date to its lunar equivalent at local offset tz
// (hours). This operation cannot fail for a date in the supported range.
func (d SolarDate) ToLunar(tz float64) (LunarDate, error) {
	lD, lM, lY, lL := core.SolarToLunar(defaultEngine, d.Day, d.Month, d.Year, tz)
	return LunarDate{Year: lY, Month: lM, Day: lD, IsLeap: lL}, nil
}

// SolarTerm returns the name of the 24-term segment containing the date,
// at local offset tz (hours).
func (d SolarDate) SolarTerm(tz float64) string {
	return core.SolarTermName(d.JDN(), tz)
}

// String renders the date as "YYYY-MM-DD".
func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d SolarDate) Before(other SolarDate) bool { return d.JDN() < other.JDN() }

// After reports whether d is strictly later than other.
func (d SolarDate) After(other SolarDate) bool { return d.JDN() > other.JDN() }

// Equal reports whether d and other name the same calendar date.
func (d SolarDate) Equal(other SolarDate) bool { return d == other }

// DaysInMonth returns the number of days in (year, month), honoring the
// Julian/Gregorian switch at 1582-10-15.
func DaysInMonth(year, month int) int {
	thisMonth := core.JDNFromYMD(1, month, year)
	var next int64
	if month == 12 {
		next = core.JDNFromYMD(1, 1, year+1)
	} else {
		next = core.JDNFromYMD(1, month+1, year)
	}
	return int(next - thisMonth)
}

// ParseISODate parses a "YYYY-MM-DD" string into a SolarDate.
func ParseISODate(s string) (SolarDate, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%04d-%02d-%02d", &y, &m, &d); err != nil {
		return SolarDate{}, fmt.Errorf("vnlunar.ParseISODate(%q): %w", s, ErrInvalidDate)
	}
	return NewSolarDate(y, m, d)
}
