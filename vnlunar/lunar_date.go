package vnlunar

import (
	"fmt"
	"time"

	"github.com/vietculture/vnlunar-calendar/internal/core"
)

// LunarDate is an immutable Vietnamese lunisolar calendar date: (Year,
// Month, Day, IsLeap). IsLeap marks this instance as the intercalary
// (leap) month named Month; a leap quadruple is only constructible when
// Year actually contains an intercalary month with that base label.
type LunarDate struct {
	Year, Month, Day int
	IsLeap           bool
}

// NewLunarDate validates and constructs a LunarDate at local offset tz
// (hours). Validation is performed by attempting the reverse conversion to
// a solar date and rejecting the quadruple if that fails.
func NewLunarDate(year, month, day int, isLeap bool, tz float64) (LunarDate, error) {
	if _, _, _, err := core.LunarToSolar(defaultEngine, day, month, year, isLeap, tz); err != nil {
		return LunarDate{}, wrapCoreErr(fmt.Sprintf("vnlunar.NewLunarDate(%d, %d, %d, %v)", year, month, day, isLeap), err)
	}
	return LunarDate{Year: year, Month: month, Day: day, IsLeap: isLeap}, nil
}

// LunarDateFromTime converts the calendar date component of t (ignoring
// time of day) to a LunarDate at local offset tz (hours).
func LunarDateFromTime(t time.Time, tz float64) LunarDate {
	return SolarDateFromTime(t).mustToLunar(tz)
}

// FromSolar converts a SolarDate to a LunarDate at local offset tz (hours).
func FromSolar(d SolarDate, tz float64) LunarDate {
	return d.mustToLunar(tz)
}

func (d SolarDate) mustToLunar(tz float64) LunarDate {
	l, _ := d.ToLunar(tz) // ToLunar never fails for a solar date in range.
	return l
}

// ToSolar converts the date back to its Gregorian/Julian equivalent at
// local offset tz (hours). It returns ErrDateNotExist when the leap flag
// is inconsistent with the year or the day exceeds that month's actual
// length, and ErrInvalidDate when Month or Day is out of range.
func (d LunarDate) ToSolar(tz float64) (SolarDate, error) {
	dd, mm, yy, err := core.LunarToSolar(defaultEngine, d.Day, d.Month, d.Year, d.IsLeap, tz)
	if err != nil {
		return SolarDate{}, wrapCoreErr(fmt.Sprintf("%s.ToSolar(%v)", d, tz), err)
	}
	return SolarDate{Year: yy, Month: mm, Day: dd}, nil
}

// YearName returns the Can-Chi (Sexagenary) name of the lunar year.
func (d LunarDate) YearName() string {
	return core.YearName(d.Year)
}

// MonthName returns the Can-Chi name of the lunar month.
func (d LunarDate) MonthName() string {
	return core.MonthName(d.Year, d.Month)
}

// DayName returns the Can-Chi name of the day, resolved at local offset tz
// (hours) since the day name depends on the Julian Day Number.
func (d LunarDate) DayName(tz float64) (string, error) {
	s, err := d.ToSolar(tz)
	if err != nil {
		return "", err
	}
	return core.DayName(s.JDN()), nil
}

// SolarTerm returns the name of the 24-term segment containing the date,
// at local offset tz (hours).
func (d LunarDate) SolarTerm(tz float64) (string, error) {
	s, err := d.ToSolar(tz)
	if err != nil {
		return "", err
	}
	return core.SolarTermName(s.JDN(), tz), nil
}

// LuckyHours returns the six auspicious two-hour windows for the date, at
// local offset tz (hours).
func (d LunarDate) LuckyHours(tz float64) ([]LuckyHour, error) {
	s, err := d.ToSolar(tz)
	if err != nil {
		return nil, err
	}
	hours := core.LuckyHours(s.JDN())
	out := make([]LuckyHour, len(hours))
	for i, h := range hours {
		out[i] = LuckyHour{Branch: h.Branch, Start: h.Start, End: h.End}
	}
	return out, nil
}

// LuckyHour names one auspicious two-hour civil window.
type LuckyHour struct {
	Branch string
	Start  int // inclusive wall-clock hour, 0..23
	End    int // exclusive wall-clock hour, 0..23
}

// String renders the date as "ngày D tháng M [nhuận] năm Y".
func (d LunarDate) String() string {
	if d.IsLeap {
		return fmt.Sprintf("ngày %d tháng %d nhuận năm %d", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("ngày %d tháng %d năm %d", d.Day, d.Month, d.Year)
}

// Equal reports whether d and other name the same lunar quadruple.
func (d LunarDate) Equal(other LunarDate) bool { return d == other }
