package core

import "testing"

func TestJDNRoundTrip(t *testing.T) {
	cases := []struct {
		y, m, d int
	}{
		{1900, 1, 1},
		{1582, 10, 4},  // last Julian-calendar day
		{1582, 10, 15}, // first Gregorian-calendar day
		{2000, 2, 29},  // Gregorian leap day
		{2024, 2, 10},
		{2100, 12, 31},
	}

	for _, c := range cases {
		jd := JDNFromYMD(c.d, c.m, c.y)
		gotY, gotM, gotD := YMDFromJDN(jd)
		if gotY != c.y || gotM != c.m || gotD != c.d {
			t.Errorf("round trip %04d-%02d-%02d: got %04d-%02d-%02d", c.y, c.m, c.d, gotY, gotM, gotD)
		}
	}
}

func TestJDNRoundTripFullRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive range check in short mode")
	}

	for y := 1900; y <= 2100; y++ {
		for m := 1; m <= 12; m++ {
			days := daysInMonth(y, m)
			for d := 1; d <= days; d++ {
				jd := JDNFromYMD(d, m, y)
				gotY, gotM, gotD := YMDFromJDN(jd)
				if gotY != y || gotM != m || gotD != d {
					t.Fatalf("round trip %04d-%02d-%02d: got %04d-%02d-%02d", y, m, d, gotY, gotM, gotD)
				}
			}
		}
	}
}

func daysInMonth(y, m int) int {
	next := JDNFromYMD(1, m%12+1, y)
	if m == 12 {
		next = JDNFromYMD(1, 1, y+1)
	}
	thisMonth := JDNFromYMD(1, m, y)
	return int(next - thisMonth)
}

func TestJDNKnownValue(t *testing.T) {
	// 2000-01-01 is JDN 2451545 (a widely cited reference value).
	got := JDNFromYMD(1, 1, 2000)
	if got != 2451545 {
		t.Errorf("JDNFromYMD(1,1,2000) = %d, want 2451545", got)
	}
}
