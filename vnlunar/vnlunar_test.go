package vnlunar

import (
	"errors"
	"testing"
)

func TestSolarToLunarKnownDates(t *testing.T) {
	cases := []struct {
		name       string
		y, m, d    int
		lY, lM, lD int
		lL         bool
		yearName   string
		monthName  string
	}{
		{"Tet 2024", 2024, 2, 10, 2024, 1, 1, false, "Giáp Thìn", "Bính Dần"},
		{"Trung Thu 2024", 2024, 9, 17, 2024, 8, 15, false, "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			solar, err := NewSolarDate(c.y, c.m, c.d)
			if err != nil {
				t.Fatalf("NewSolarDate: %v", err)
			}

			lunar, err := solar.ToLunar(DefaultTZ)
			if err != nil {
				t.Fatalf("ToLunar: %v", err)
			}

			if lunar.Year != c.lY || lunar.Month != c.lM || lunar.Day != c.lD || lunar.IsLeap != c.lL {
				t.Errorf("ToLunar() = %+v, want Year=%d Month=%d Day=%d IsLeap=%v", lunar, c.lY, c.lM, c.lD, c.lL)
			}

			if c.yearName != "" {
				if got := lunar.YearName(); got != c.yearName {
					t.Errorf("YearName() = %q, want %q", got, c.yearName)
				}
			}
			if c.monthName != "" {
				if got := lunar.MonthName(); got != c.monthName {
					t.Errorf("MonthName() = %q, want %q", got, c.monthName)
				}
			}
		})
	}
}

func TestRoundTripSolarLunarSolar(t *testing.T) {
	for _, ymd := range [][3]int{{1967, 1, 1}, {2000, 6, 15}, {2023, 2, 20}, {2024, 9, 17}, {2100, 12, 31}} {
		solar, err := NewSolarDate(ymd[0], ymd[1], ymd[2])
		if err != nil {
			t.Fatalf("NewSolarDate%v: %v", ymd, err)
		}

		lunar, err := solar.ToLunar(DefaultTZ)
		if err != nil {
			t.Fatalf("ToLunar: %v", err)
		}

		back, err := lunar.ToSolar(DefaultTZ)
		if err != nil {
			t.Fatalf("ToSolar: %v", err)
		}

		if back != solar {
			t.Errorf("round trip %v -> %+v -> %v, want %v", solar, lunar, back, solar)
		}
	}
}

func TestLeapMonthLunarDateRoundTrip(t *testing.T) {
	solar, err := NewSolarDate(2023, 2, 20)
	if err != nil {
		t.Fatalf("NewSolarDate: %v", err)
	}
	lunar, err := solar.ToLunar(DefaultTZ)
	if err != nil {
		t.Fatalf("ToLunar: %v", err)
	}
	if !lunar.IsLeap {
		t.Fatalf("expected 2023-02-20 to resolve to a leap-month lunar date, got %+v", lunar)
	}

	reconstructed, err := NewLunarDate(lunar.Year, lunar.Month, lunar.Day, true, DefaultTZ)
	if err != nil {
		t.Fatalf("NewLunarDate: %v", err)
	}
	if reconstructed != lunar {
		t.Errorf("NewLunarDate round trip = %+v, want %+v", reconstructed, lunar)
	}
}

func TestNewLunarDateRejectsNonexistentLeapMonth(t *testing.T) {
	// 2024 has no leap month (2024's lunar year is ordinary), so claiming
	// month 1 is a leap month must fail.
	_, err := NewLunarDate(2024, 1, 1, true, DefaultTZ)
	if err == nil {
		t.Fatal("expected error for nonexistent leap month, got nil")
	}
	if !errors.Is(err, ErrDateNotExist) {
		t.Errorf("error = %v, want errors.Is(err, ErrDateNotExist)", err)
	}
}

func TestNewSolarDateRejectsInvalidDay(t *testing.T) {
	_, err := NewSolarDate(2023, 2, 29) // 2023 is not a leap year
	if err == nil {
		t.Fatal("expected error for 2023-02-29, got nil")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("error = %v, want errors.Is(err, ErrInvalidDate)", err)
	}
}

func TestSolarTermKnownDates(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    string
	}{
		{2020, 6, 21, "Hạ chí"},
		{2020, 9, 22, "Thu phân"},
	}
	for _, c := range cases {
		d, err := NewSolarDate(c.y, c.m, c.d)
		if err != nil {
			t.Fatalf("NewSolarDate: %v", err)
		}
		if got := d.SolarTerm(DefaultTZ); got != c.want {
			t.Errorf("SolarTerm(%v) = %q, want %q", d, got, c.want)
		}
	}
}

func TestLuckyHoursReturnsSixWindows(t *testing.T) {
	d, err := NewSolarDate(2024, 2, 10)
	if err != nil {
		t.Fatalf("NewSolarDate: %v", err)
	}
	lunar, err := d.ToLunar(DefaultTZ)
	if err != nil {
		t.Fatalf("ToLunar: %v", err)
	}
	hours, err := lunar.LuckyHours(DefaultTZ)
	if err != nil {
		t.Fatalf("LuckyHours: %v", err)
	}
	if len(hours) != 6 {
		t.Errorf("LuckyHours returned %d entries, want 6", len(hours))
	}
}

func TestStringFormatting(t *testing.T) {
	d, _ := NewSolarDate(2024, 2, 10)
	if got, want := d.String(), "2024-02-10"; got != want {
		t.Errorf("SolarDate.String() = %q, want %q", got, want)
	}

	l := LunarDate{Year: 2024, Month: 1, Day: 1, IsLeap: false}
	if got, want := l.String(), "ngày 1 tháng 1 năm 2024"; got != want {
		t.Errorf("LunarDate.String() = %q, want %q", got, want)
	}

	l.IsLeap = true
	if got, want := l.String(), "ngày 1 tháng 1 nhuận năm 2024"; got != want {
		t.Errorf("LunarDate.String() (leap) = %q, want %q", got, want)
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-09-17")
	if err != nil {
		t.Fatalf("ParseISODate: %v", err)
	}
	want, _ := NewSolarDate(2024, 9, 17)
	if d != want {
		t.Errorf("ParseISODate = %v, want %v", d, want)
	}

	if _, err := ParseISODate("not-a-date"); err == nil {
		t.Error("expected error for malformed date string")
	}
}
