package core

// Stems holds the ten Heavenly Stems (Thiên Can), in cycle order.
var Stems = [10]string{
	"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý",
}

// Branches holds the twelve Earthly Branches (Địa Chi), in cycle order.
// Index 0 is Tý.
var Branches = [12]string{
	"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi",
}

// CanChi joins a stem and a branch as "Stem Branch", e.g. "Giáp Thìn".
func CanChi(stemIndex, branchIndex int) string {
	return Stems[mod(stemIndex, 10)] + " " + Branches[mod(branchIndex, 12)]
}

// YearName returns the Can-Chi name of Gregorian/lunar year y.
func YearName(y int) string {
	return CanChi(y+6, y+8)
}

// MonthName returns the Can-Chi name of lunar month m (1..12) within lunar
// year y.
func MonthName(y, m int) string {
	stem := mod(12*y+m+3, 10)
	branch := mod(m+1, 12)
	return CanChi(stem, branch)
}

// DayName returns the Can-Chi name of the civil day identified by JDN jd.
func DayName(jd int64) string {
	stem := mod(int(jd+9), 10)
	branch := mod(int(jd+1), 12)
	return CanChi(stem, branch)
}

// HourName returns the Can-Chi name of the first two-hour segment (Tý,
// 23:00 of the previous civil day through 01:00) of the civil day
// identified by JDN jd.
func HourName(jd int64) string {
	stem := mod(int(2*(jd-1)), 10)
	return CanChi(stem, 0)
}
