package core

import "math"

// referenceEpoch is the Julian Day of the lunation-index reference new
// moon close to 1900-01-01 13:52 UT.
const referenceEpoch = 2415021.076998695

// synodicMonth is the mean length, in days, of a synodic lunar month.
const synodicMonth = 29.530588853

// LunarMonth11 returns the JDN of the new-moon day that begins the lunar
// month containing the Winter Solstice of Gregorian year y, evaluated at
// local offset tz (hours).
func LunarMonth11(e *Engine, y int, tz float64) int64 {
	return lunarMonth11(e, y, tz)
}

func lunarMonth11(e *Engine, y int, tz float64) int64 {
	off := JDNFromYMD(31, 12, y) - 2415021
	k := int64(math.Floor(float64(off) / synodicMonth))
	nm := e.NewMoonDay(k, tz)
	if SunSegment(nm, tz) >= 9 {
		nm = e.NewMoonDay(k-1, tz)
	}
	return nm
}

// maxLeapIterations bounds the leap-month search in spec §4.4.
const maxLeapIterations = 14

// LeapMonthOffset returns the offset i in [1, 13] of the intercalary month
// relative to month 11, given the JDN a11 of a month-11 anchor that opens a
// 13-month (leap) year.
func LeapMonthOffset(e *Engine, a11 int64, tz float64) int {
	return leapMonthOffset(e, a11, tz)
}

func leapMonthOffset(e *Engine, a11 int64, tz float64) int {
	k := int64(math.Floor((float64(a11)-referenceEpoch)/synodicMonth + 0.5))

	prevArc := -1
	for i := 1; i <= maxLeapIterations; i++ {
		arc := SunSegment(e.NewMoonDay(k+int64(i), tz), tz)
		if i >= 2 && arc == prevArc {
			return i - 1
		}
		prevArc = arc
	}
	return maxLeapIterations - 1
}

// SolarToLunar converts a Gregorian (dd, mm, yy) date, at local offset tz
// (hours), to a lunar (day, month, year, isLeap) quadruple. This operation
// cannot fail for a valid solar date in range.
func SolarToLunar(e *Engine, dd, mm, yy int, tz float64) (lD, lM, lY int, lL bool) {
	day := JDNFromYMD(dd, mm, yy)

	k := int64(math.Floor((float64(day) - referenceEpoch) / synodicMonth))
	monthStart := e.NewMoonDay(k+1, tz)
	if monthStart > day {
		monthStart = e.NewMoonDay(k, tz)
	}

	a11 := e.LunarMonth11(yy, tz)
	b11 := a11
	if a11 >= monthStart {
		lY = yy
		a11 = e.LunarMonth11(yy-1, tz)
	} else {
		lY = yy + 1
		b11 = e.LunarMonth11(yy+1, tz)
	}

	lD = int(day-monthStart) + 1
	diff := int(floorDiv64(monthStart-a11, 29))
	lL = false
	lM = diff + 11

	if b11-a11 > 365 {
		lo := leapMonthOffset(e, a11, tz)
		if diff >= lo {
			lM = diff + 10
		}
		if diff == lo {
			lL = true
		}
	}

	if lM > 12 {
		lM -= 12
	}
	if lM >= 11 && diff < 4 {
		lY--
	}

	return lD, lM, lY, lL
}

// LunarToSolar converts a lunar (lD, lM, lY, lL) quadruple, at local offset
// tz (hours), back to a Gregorian (dd, mm, yy) date. It returns
// ErrInvalidDate when lM is out of 1..12 or lD is out of 1..30, and
// ErrDateNotExist when the leap flag is inconsistent with the year or lD
// exceeds the actual length of that lunar month.
func LunarToSolar(e *Engine, lD, lM, lY int, lL bool, tz float64) (dd, mm, yy int, err error) {
	if lM < 1 || lM > 12 {
		return 0, 0, 0, ErrInvalidDate
	}
	if lD < 1 || lD > 30 {
		return 0, 0, 0, ErrInvalidDate
	}

	var a11, b11 int64
	if lM < 11 {
		a11 = e.LunarMonth11(lY-1, tz)
		b11 = e.LunarMonth11(lY, tz)
	} else {
		a11 = e.LunarMonth11(lY, tz)
		b11 = e.LunarMonth11(lY+1, tz)
	}

	k := int64(math.Floor(0.5 + (float64(a11)-referenceEpoch)/synodicMonth))
	off := lM - 11
	if off < 0 {
		off += 12
	}

	if b11-a11 > 365 {
		lo := leapMonthOffset(e, a11, tz)
		lm := lo - 2
		if lm < 0 {
			lm += 12
		}
		if lL && lM != lm {
			return 0, 0, 0, ErrDateNotExist
		}
		if lL || off >= lo {
			off++
		}
	} else if lL {
		return 0, 0, 0, ErrDateNotExist
	}

	monthStart := e.NewMoonDay(k+int64(off), tz)
	nextMonthStart := e.NewMoonDay(k+int64(off)+1, tz)
	if int64(lD) > nextMonthStart-monthStart {
		return 0, 0, 0, ErrDateNotExist
	}

	yy, mm, dd = YMDFromJDN(monthStart + int64(lD) - 1)
	return dd, mm, yy, nil
}

// MonthLength returns the number of solar days in the lunar month that
// begins on the new-moon day of lunation k+off, i.e. the distance to the
// new-moon day of lunation k+off+1.
func MonthLength(e *Engine, k int64, off int, tz float64) int64 {
	monthStart := e.NewMoonDay(k+int64(off), tz)
	nextMonthStart := e.NewMoonDay(k+int64(off)+1, tz)
	return nextMonthStart - monthStart
}
