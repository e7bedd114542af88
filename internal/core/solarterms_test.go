package core

import "testing"

func TestSolarTermKnownDates(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    string
	}{
		{2020, 6, 21, "Hạ chí"},
		{2020, 9, 22, "Thu phân"},
	}

	for _, c := range cases {
		jd := JDNFromYMD(c.d, c.m, c.y)
		got := SolarTermName(jd, testTZ)
		if got != c.want {
			t.Errorf("SolarTermName(%04d-%02d-%02d) = %q, want %q", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestSolarTermIndexByName(t *testing.T) {
	idx, ok := SolarTermIndexByName("dong chi")
	if !ok || Terms[idx] != "Đông chí" {
		t.Errorf("SolarTermIndexByName(dong chi) = (%d, %v), want Đông chí", idx, ok)
	}

	if _, ok := SolarTermIndexByName("not a term"); ok {
		t.Error("SolarTermIndexByName(not a term) ok = true, want false")
	}
}

func TestMajorTermParity(t *testing.T) {
	majors := map[string]bool{
		"Xuân phân": true, "Cốc vũ": true, "Tiểu mãn": true, "Hạ chí": true,
		"Đại thử": true, "Xử thử": true, "Thu phân": true, "Sương giáng": true,
		"Tiểu tuyết": true, "Đông chí": true, "Đại hàn": true, "Vũ thủy": true,
	}

	for i, name := range Terms {
		if IsMajorTerm(i) != majors[name] {
			t.Errorf("IsMajorTerm(%d) [%s] = %v, want %v", i, name, IsMajorTerm(i), majors[name])
		}
	}
}

func TestLeapMonthHasNoMajorTerm(t *testing.T) {
	e := NewEngine(0, 0, 0)

	for y := 1950; y <= 2050; y++ {
		a11 := e.LunarMonth11(y, testTZ)
		b11 := e.LunarMonth11(y+1, testTZ)
		if b11-a11 <= 365 {
			continue // no leap month this lunar year
		}

		lo := LeapMonthOffset(e, a11, testTZ)
		k := int64(float64(a11-2415021)/synodicMonth + 0.5)
		monthStart := e.NewMoonDay(k+int64(lo), testTZ)
		nextStart := e.NewMoonDay(k+int64(lo)+1, testTZ)

		hasMajor := false
		for jd := monthStart; jd < nextStart; jd++ {
			if IsMajorTerm(SolarTermIndex(jd, testTZ)) {
				hasMajor = true
				break
			}
		}
		if hasMajor {
			t.Errorf("year %d: leap month (offset %d from month 11) unexpectedly contains a Major Solar Term", y, lo)
		}
	}
}
