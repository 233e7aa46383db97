package engine

import (
	"math/bits"
)

// Bit operations follow the engine's two's complement view: a negative
// value behaves as if it had an infinite prefix of one bits.

// And sets dst = a & b.
func And(dst, a, b *Rep) {
	dst.z.And(&a.z, &b.z)
}

// Ior sets dst = a | b.
func Ior(dst, a, b *Rep) {
	dst.z.Or(&a.z, &b.z)
}

// Xor sets dst = a ^ b.
func Xor(dst, a, b *Rep) {
	dst.z.Xor(&a.z, &b.z)
}

// Com sets dst = ^a, the one's complement.
func Com(dst, a *Rep) {
	dst.z.Not(&a.z)
}

// NoBit is returned by scans and counts that have no defined answer,
// such as the population count of a negative value.
const NoBit = ^uint64(0)

// Popcount returns the number of one bits in a, or NoBit when a is
// negative (infinitely many).
func Popcount(a *Rep) uint64 {
	if a.z.Sign() < 0 {
		return NoBit
	}
	var n uint64
	for _, w := range a.z.Bits() {
		n += uint64(bits.OnesCount(uint(w)))
	}
	return n
}

// Hamdist returns the number of bit positions where a and b differ, or
// NoBit when exactly one of them is negative.
func Hamdist(a, b *Rep) uint64 {
	if (a.z.Sign() < 0) != (b.z.Sign() < 0) {
		return NoBit
	}
	var x Rep
	x.z.Xor(&a.z, &b.z)
	// Same signs make the xor non-negative.
	return Popcount(&x)
}

// Scan1 returns the index of the first one bit at or above start, or
// NoBit when there is none.
func Scan1(a *Rep, start uint) uint64 {
	if a.z.Sign() >= 0 {
		n := uint(a.z.BitLen())
		for i := start; i < n; i++ {
			if a.z.Bit(int(i)) == 1 {
				return uint64(i)
			}
		}
		return NoBit
	}
	// Negative values have ones all the way up.
	for i := start; ; i++ {
		if a.z.Bit(int(i)) == 1 {
			return uint64(i)
		}
	}
}

// Scan0 returns the index of the first zero bit at or above start, or
// NoBit when there is none.
func Scan0(a *Rep, start uint) uint64 {
	if a.z.Sign() >= 0 {
		// Non-negative values have zeros all the way up.
		for i := start; ; i++ {
			if a.z.Bit(int(i)) == 0 {
				return uint64(i)
			}
		}
	}
	n := uint(a.z.BitLen()) + 1
	for i := start; i < n; i++ {
		if a.z.Bit(int(i)) == 0 {
			return uint64(i)
		}
	}
	return NoBit
}

// SetBit sets bit index of dst to 1, dst = a | (1 << index).
func SetBit(dst, a *Rep, index uint) {
	dst.z.SetBit(&a.z, int(index), 1)
}

// ClrBit clears bit index of dst.
func ClrBit(dst, a *Rep, index uint) {
	dst.z.SetBit(&a.z, int(index), 0)
}

// ComBit toggles bit index of dst.
func ComBit(dst, a *Rep, index uint) {
	dst.z.SetBit(&a.z, int(index), 1-a.z.Bit(int(index)))
}

// TstBit returns bit index of a in the two's complement view.
func TstBit(a *Rep, index uint) uint {
	return a.z.Bit(int(index))
}
