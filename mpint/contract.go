package mpint

import (
	"math"
	"sync/atomic"

	"github.com/wippyai/mp-runtime/errors"
)

// trustCasts disables the range and finiteness checks on conversions
// between values and native scalars. Process-wide, like the engine's
// allocator hook.
var trustCasts atomic.Bool

// SetTrustCasts switches conversion checking off (true) or on (false)
// and returns the previous setting. With checks off, out-of-range
// conversions silently truncate instead of panicking.
func SetTrustCasts(trust bool) bool {
	return trustCasts.Swap(trust)
}

func checkFinite(f float64) {
	if trustCasts.Load() {
		return
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(errors.Contract("non-finite scalar %v", f))
	}
}
