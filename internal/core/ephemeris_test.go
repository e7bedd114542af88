package core

import (
	"math"
	"testing"
)

func TestNewMoonMonotonicAndSpacedBySynodicMonth(t *testing.T) {
	for k := int64(-1000); k < 1000; k += 137 {
		a := NewMoon(float64(k))
		b := NewMoon(float64(k + 1))
		delta := b - a
		if delta < 29.0 || delta > 30.1 {
			t.Errorf("NewMoon(%d+1) - NewMoon(%d) = %f, want ~29.53", k, k, delta)
		}
	}
}

func TestSunLongitudeInRange(t *testing.T) {
	for jd := 2415020.0; jd < 2488070.0; jd += 3731.0 {
		l := SunLongitude(jd)
		if l < 0 || l >= 2*math.Pi {
			t.Errorf("SunLongitude(%f) = %f, want [0, 2π)", jd, l)
		}
	}
}

func TestSunSegmentCoversAllTwelveArcsPerYear(t *testing.T) {
	seen := make(map[int]bool)
	start := JDNFromYMD(1, 1, 2024)
	for i := int64(0); i < 366; i++ {
		seen[SunSegment(start+i, testTZ)] = true
	}
	if len(seen) != 12 {
		t.Errorf("observed %d distinct sun segments over a year, want 12: %v", len(seen), seen)
	}
}
