// Package core implements the astronomical and calendrical engine behind
// the Vietnamese lunisolar calendar: Julian Day conversions, the Meeus
// ephemeris, the lunar month assembler, and the derived Can-Chi, Solar
// Term, and Lucky Hours tables.
//
// Every function in this package is pure and referentially transparent
// given its arguments, aside from the bounded LRU caches in cache.go, which
// are accelerators only and never change an observable result.
package core

// JDNFromYMD converts a (day, month, year) triple to a Julian Day Number
// using the Tondering formula, switching automatically from the Julian to
// the Gregorian calendar at 1582-10-15.
//
// All divisions below are floor division on non-negative operands, which
// matches Go's integer division for the operand signs produced here.
func JDNFromYMD(dd, mm, yy int) int64 {
	a := floorDiv(14-mm, 12)
	y := int64(yy) + 4800 - int64(a)
	m := int64(mm) + 12*int64(a) - 3

	jd := int64(dd) + floorDiv64(153*m+2, 5) + 365*y + floorDiv64(y, 4) - floorDiv64(y, 100) + floorDiv64(y, 400) - 32045

	if jd < 2299161 {
		jd = int64(dd) + floorDiv64(153*m+2, 5) + 365*y + floorDiv64(y, 4) - 32083
	}
	return jd
}

// YMDFromJDN is the inverse of JDNFromYMD.
func YMDFromJDN(jd int64) (yy, mm, dd int) {
	var a, b, c int64
	if jd > 2299160 {
		a = jd + 32044
		b = floorDiv64(4*a+3, 146097)
		c = a - floorDiv64(146097*b, 4)
	} else {
		b = 0
		c = jd + 32082
	}

	d := floorDiv64(4*c+3, 1461)
	e := c - floorDiv64(1461*d, 4)
	m := floorDiv64(5*e+2, 153)

	day := e - floorDiv64(153*m+2, 5) + 1
	month := m + 3 - 12*floorDiv64(m, 10)
	year := 100*b + d - 4800 + floorDiv64(m, 10)

	return int(year), int(month), int(day)
}

// floorDiv performs floor division on int operands.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorDiv64 performs floor division on int64 operands.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
