package core

import "errors"

// Sentinel errors returned by the core layer. The core math itself never
// fails (division by zero is impossible by construction and every trig
// argument is finite); these are raised only by LunarToSolar, when a lunar
// quadruple cannot correspond to any solar date.
var (
	// ErrInvalidDate signals that lunar components violate basic range
	// rules (month out of 1..12, day out of 1..30).
	ErrInvalidDate = errors.New("core: invalid date components")

	// ErrDateNotExist signals that a lunar quadruple references a leap
	// month that does not occur in its year, or a day beyond that month's
	// length.
	ErrDateNotExist = errors.New("core: lunar date does not exist")
)
