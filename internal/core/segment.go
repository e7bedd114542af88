package core

import "math"

// newMoonDay returns the integer Julian Day Number of the civil day that
// contains the new moon of lunation k, at local offset tz (hours). This is
// the uncached core of Engine.NewMoonDay.
func newMoonDay(e *Engine, k int64, tz float64) int64 {
	nm := e.NewMoon(k)
	return int64(math.Floor(nm + 0.5 + tz/24))
}

// SunSegment returns which of the twelve 30-degree ecliptic arcs the Sun
// occupies at local midnight opening the civil day dayNumber (a JDN), at
// local offset tz (hours). Segment 9 is the arc beginning at the Winter
// Solstice.
func SunSegment(dayNumber int64, tz float64) int {
	longitude := SunLongitude(float64(dayNumber) - 0.5 - tz/24)
	seg := int(math.Floor(longitude * 6 / math.Pi))
	return mod(seg, 12)
}

// sunSegment24 returns which of the twenty-four 15-degree solar-term arcs
// the Sun occupies at local midnight opening civil day d (a JDN), at local
// offset tz (hours).
func sunSegment24(d float64, tz float64) int {
	longitude := SunLongitude(d - 0.5 - tz/24)
	seg := int(math.Floor(longitude * 12 / math.Pi))
	return mod(seg, 24)
}

// mod is Euclidean modulo: the result always has the sign of n (non-negative
// for positive n), matching the "mod" used throughout spec §4.5-§4.7.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
