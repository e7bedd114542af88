package core

// luckyPatterns holds the six 12-bit auspicious-hour patterns, indexed by
// (day branch index) mod 6. Bit i (MSB first, i = 0..11) marks the i-th
// two-hour segment as auspicious; segment i always names Branches[i]
// (segment 0 is Tý, 23:00-01:00), independent of which day it falls on.
var luckyPatterns = [6]string{
	"110100101100", // Tý / Ngọ
	"001101001011", // Sửu / Mùi
	"110011010010", // Dần / Thân
	"101100110100", // Mão / Dậu
	"001011001101", // Thìn / Tuất
	"010010110011", // Tỵ / Hợi
}

// LuckyHour names one auspicious two-hour civil window.
type LuckyHour struct {
	Branch string
	Start  int // inclusive wall-clock hour, 0..23
	End    int // exclusive wall-clock hour, 0..24
}

// LuckyHours returns the ordered sequence of auspicious two-hour windows
// for the civil day identified by JDN jd.
func LuckyHours(jd int64) []LuckyHour {
	branchIndex := mod(int(jd+1), 12)
	pattern := luckyPatterns[branchIndex%6]

	hours := make([]LuckyHour, 0, 6)
	for i := 0; i < 12; i++ {
		if pattern[i] != '1' {
			continue
		}
		start := mod(2*i+23, 24)
		end := mod(2*i+1, 24)
		hours = append(hours, LuckyHour{
			Branch: Branches[i],
			Start:  start,
			End:    end,
		})
	}
	return hours
}
