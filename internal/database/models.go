// Package database provides the persisted lunar-year-table cache backing
// the calendar engine's HTTP API.
package database

import "time"

// YearTable is a precomputed summary of one Gregorian year's lunar months at
// a given local offset tz (hours): the month-11 anchor, the position of the
// leap month (if any), and the start day-number of every lunar month that
// begins within the Gregorian year. The table is descriptive only:
// conversions always run through the in-memory engine (internal/core) and
// never read it back.
type YearTable struct {
	ID int64 `json:"id"`

	GregorianYear int     `json:"gregorian_year"`
	TZ            float64 `json:"tz"`

	// Month11AnchorJDN is the day number (truncated Julian Day Number at
	// local noon) of the new moon that begins the first non-leap month 11
	// starting within GregorianYear (spec §4.4).
	Month11AnchorJDN int64 `json:"month11_anchor_jdn"`

	// LeapMonthOffset is the 1-based position of the leap month within
	// MonthStartJDNs, or 0 if no month starting in GregorianYear is a leap
	// month.
	LeapMonthOffset int `json:"leap_month_offset"`

	// MonthStartJDNs holds the day number each lunar month beginning in
	// GregorianYear starts on, in chronological order.
	MonthStartJDNs []int64 `json:"month_start_jdns"`

	ComputedAt time.Time `json:"computed_at"`
}

// HasLeapMonth reports whether a lunar month starting within GregorianYear
// is an intercalary month.
func (t YearTable) HasLeapMonth() bool { return t.LeapMonthOffset > 0 }
