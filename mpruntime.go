package mpruntime

import "math/big"

// Limb is one machine word of an integer's magnitude, least significant
// limb first. It is the unit the engine allocator deals in.
type Limb = big.Word

// Allocator provides limb storage for the arithmetic engine. The engine
// routes every representation's backing buffer through the installed
// allocator so the host controls where limb memory lives.
type Allocator interface {
	// AllocLimbs returns a zeroed buffer of at least n limbs.
	AllocLimbs(n int) []Limb

	// FreeLimbs returns a buffer obtained from AllocLimbs. Implementations
	// may recycle it; callers must not touch the slice afterwards.
	FreeLimbs(buf []Limb)
}
