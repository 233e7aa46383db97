package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
)

// Cmp compares x and y, returning -1, 0, or +1.
func Cmp(x, y *Int) int {
	var c int
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		yr, rel := operand(d, x.affinity, y)
		defer rel()
		c = engine.Cmp(x.rep(d), yr)
		return nil
	})
	return c
}

// Cmp compares x against y.
func (x *Int) Cmp(y *Int) int {
	return Cmp(x, y)
}

// CmpAbs compares |x| and |y|.
func CmpAbs(x, y *Int) int {
	var c int
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		yr, rel := operand(d, x.affinity, y)
		defer rel()
		c = engine.CmpAbs(x.rep(d), yr)
		return nil
	})
	return c
}

// CmpInt64 compares x against the scalar v.
func (x *Int) CmpInt64(v int64) int {
	var c int
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		c = engine.CmpInt64(x.rep(d), v)
		return nil
	})
	return c
}

// CmpUint64 compares x against the scalar v.
func (x *Int) CmpUint64(v uint64) int {
	var c int
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		c = engine.CmpUint64(x.rep(d), v)
		return nil
	})
	return c
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x *Int) Sign() int {
	var s int
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		s = engine.Sign(x.rep(d))
		return nil
	})
	return s
}

// BitLen returns the length of |x| in bits.
func (x *Int) BitLen() uint {
	var n uint
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		n = engine.BitLen(x.rep(d))
		return nil
	})
	return n
}
