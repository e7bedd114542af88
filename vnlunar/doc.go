// Package vnlunar converts between Gregorian solar dates and the
// Vietnamese lunisolar calendar, and derives the cultural labels attached
// to a date: Can-Chi (Heavenly Stem / Earthly Branch) names, the 24 Solar
// Terms, and the daily Lucky Hours table.
//
// Two immutable value types make up the public surface: [SolarDate] and
// [LunarDate]. Both are constructed once, validated at construction, and
// never mutated afterward; they are safe to share across goroutines and
// safe to use as map keys. Conversion between the two is an explicit
// method call, never a cast.
//
//	d, err := vnlunar.NewSolarDate(2024, 2, 10)
//	l, err := d.ToLunar(vnlunar.DefaultTZ) // (2024, 1, 1, false): "Tết"
//
// The heavy astronomical computation — Julian Day conversion, the Meeus
// ephemeris, and the lunar month assembler — lives in the internal/core
// package; this package only validates arguments and forwards to it.
package vnlunar

// DefaultTZ is the default local offset used when none is supplied:
// Indochina Time, UTC+7.
const DefaultTZ = 7.0

// SupportedYearMin and SupportedYearMax bound the range over which the
// engine is guaranteed correct (spec §3). Outside this window results are
// still computed deterministically but should be treated as advisory.
const (
	SupportedYearMin = 1900
	SupportedYearMax = 2100
)
