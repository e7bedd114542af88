package vnlunar

import (
	"errors"
	"fmt"

	"github.com/vietculture/vnlunar-calendar/internal/core"
)

// Sentinel errors forming the public error taxonomy (spec §6-7). Callers
// should compare against these with errors.Is, since every returned error
// is wrapped with additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidDate means the solar or lunar components violate range or
	// per-month day-count rules.
	ErrInvalidDate = errors.New("vnlunar: invalid date")

	// ErrOutOfRange means the year falls outside [SupportedYearMin,
	// SupportedYearMax].
	ErrOutOfRange = errors.New("vnlunar: year out of supported range")

	// ErrDateNotExist means a lunar quadruple references a leap month that
	// does not occur in its year, or a day beyond that month's length.
	ErrDateNotExist = errors.New("vnlunar: lunar date does not exist")

	// ErrUnknownTermName means a name passed to SolarTermIndexByName does
	// not match any of the 24 Solar Terms, even after diacritic folding.
	ErrUnknownTermName = errors.New("vnlunar: unrecognized solar term name")
)

// wrapCoreErr translates a core sentinel error into the public taxonomy.
func wrapCoreErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrDateNotExist):
		return fmt.Errorf("%s: %w", op, ErrDateNotExist)
	case errors.Is(err, core.ErrInvalidDate):
		return fmt.Errorf("%s: %w", op, ErrInvalidDate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
