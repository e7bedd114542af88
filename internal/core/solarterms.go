package core

import "github.com/vietculture/vnlunar-calendar/internal/core/vi"

// Terms holds the 24 Solar Terms (Tiết Khí) in ecliptic order, starting at
// the vernal equinox (Xuân phân, 0°). Even indices are Major Solar Terms
// (Trung Khí); the leap-month rule is defined in terms of this parity.
var Terms = [24]string{
	"Xuân phân", "Thanh minh", "Cốc vũ", "Lập hạ", "Tiểu mãn", "Mang chủng",
	"Hạ chí", "Tiểu thử", "Đại thử", "Lập thu", "Xử thử", "Bạch lộ",
	"Thu phân", "Hàn lộ", "Sương giáng", "Lập đông", "Tiểu tuyết", "Đại tuyết",
	"Đông chí", "Tiểu hàn", "Đại hàn", "Lập xuân", "Vũ thủy", "Kinh trập",
}

// IsMajorTerm reports whether the Solar Term at the given index is a Major
// Solar Term (Trung Khí) — the terms whose absence from a month marks it as
// the intercalary month.
func IsMajorTerm(index int) bool {
	return mod(index, 24)%2 == 0
}

// SolarTermName returns the name of the Solar Term segment containing civil
// day jd (a JDN), at local offset tz (hours).
func SolarTermName(jd int64, tz float64) string {
	return Terms[sunSegment24(float64(jd)+1, tz)]
}

// SolarTermIndex returns the 0..23 Solar Term segment index for civil day
// jd, at local offset tz (hours).
func SolarTermIndex(jd int64, tz float64) int {
	return sunSegment24(float64(jd)+1, tz)
}

// SolarTermIndexByName resolves a user-supplied Solar Term name to its
// canonical 0..23 index, tolerant of missing tone marks and case (e.g.
// "dong chi" and "Đông Chí" both resolve to index 18). Returns false if
// name does not match any of the 24 terms.
func SolarTermIndexByName(name string) (int, bool) {
	idx := vi.FindIndex(Terms[:], name)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
