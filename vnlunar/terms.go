package vnlunar

import (
	"fmt"

	"github.com/vietculture/vnlunar-calendar/internal/core"
)

// SolarTermIndexByName resolves a Solar Term name to its canonical 0..23
// index, tolerant of missing tone marks and case. Returns
// ErrUnknownTermName if name matches none of the 24 terms.
func SolarTermIndexByName(name string) (int, error) {
	idx, ok := core.SolarTermIndexByName(name)
	if !ok {
		return 0, fmt.Errorf("vnlunar.SolarTermIndexByName(%q): %w", name, ErrUnknownTermName)
	}
	return idx, nil
}

// SolarTermName returns the canonical name of the Solar Term at index
// (0..23, wrapping), e.g. SolarTermName(18) == "Đông chí".
func SolarTermName(index int) string {
	return core.Terms[((index%24)+24)%24]
}
