package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
)

// Bit operations use the two's complement view: a negative value
// behaves as if it had an infinite prefix of one bits.

// NoBit is returned by scans and counts with no defined answer.
const NoBit = engine.NoBit

// And sets z = x & y.
func (z *Int) And(x, y *Int) *Int {
	return z.apply2(x, y, engine.And)
}

// Ior sets z = x | y.
func (z *Int) Ior(x, y *Int) *Int {
	return z.apply2(x, y, engine.Ior)
}

// Xor sets z = x ^ y.
func (z *Int) Xor(x, y *Int) *Int {
	return z.apply2(x, y, engine.Xor)
}

// Com sets z = ^x, the one's complement.
func (z *Int) Com(x *Int) *Int {
	return z.apply1(x, engine.Com)
}

// Popcount returns the number of one bits in x, or NoBit when x is
// negative.
func (x *Int) Popcount() uint64 {
	var n uint64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		n = engine.Popcount(x.rep(d))
		return nil
	})
	return n
}

// Hamdist returns the number of bit positions where x and y differ, or
// NoBit when exactly one of them is negative.
func Hamdist(x, y *Int) uint64 {
	var n uint64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		yr, rel := operand(d, x.affinity, y)
		defer rel()
		n = engine.Hamdist(x.rep(d), yr)
		return nil
	})
	return n
}

// Scan1 returns the index of the first one bit at or above start, or
// NoBit when there is none.
func (x *Int) Scan1(start uint) uint64 {
	var n uint64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		n = engine.Scan1(x.rep(d), start)
		return nil
	})
	return n
}

// Scan0 returns the index of the first zero bit at or above start, or
// NoBit when there is none.
func (x *Int) Scan0(start uint) uint64 {
	var n uint64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		n = engine.Scan0(x.rep(d), start)
		return nil
	})
	return n
}

// SetBit sets bit index of z to 1.
func (z *Int) SetBit(index uint) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.SetBit(dst, dst, index) })
}

// ClrBit clears bit index of z.
func (z *Int) ClrBit(index uint) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.ClrBit(dst, dst, index) })
}

// ComBit toggles bit index of z.
func (z *Int) ComBit(index uint) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.ComBit(dst, dst, index) })
}

// TstBit returns bit index of x in the two's complement view.
func (x *Int) TstBit(index uint) uint {
	var b uint
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		b = engine.TstBit(x.rep(d), index)
		return nil
	})
	return b
}
