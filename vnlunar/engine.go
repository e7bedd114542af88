package vnlunar

import "github.com/vietculture/vnlunar-calendar/internal/core"

// defaultEngine backs every package-level conversion. It is created once
// with the spec-mandated cache-size floors and is safe for concurrent use
// (spec §5): the only state it holds is bounded, purely-functional
// memoization.
var defaultEngine = core.NewEngine(0, 0, 0)

// NewEngineWithCacheSizes builds an independent computation engine with the
// given LRU capacities for the three memoized functions in spec §4.8
// (new moon instants, new-moon-day lookups, month-11 anchors). Passing 0
// for any size falls back to the spec-mandated floor. SolarDate and
// LunarDate methods do not use an engine built here; they always go through
// the package's default engine.
func NewEngineWithCacheSizes(newMoon, newMoonDay, month11 int) *core.Engine {
	return core.NewEngine(newMoon, newMoonDay, month11)
}
