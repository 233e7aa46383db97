package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/errors"
	"github.com/wippyai/mp-runtime/locale"
)

// Rounding selects the quotient rounding direction for the division
// families. The remainder always satisfies n = q*d + r with |r| < |d|;
// the rounding mode fixes its sign.
type Rounding int

const (
	// RoundCeiling rounds the quotient toward +infinity; the remainder
	// has the opposite sign of the divisor or is zero.
	RoundCeiling Rounding = iota
	// RoundFloor rounds toward -infinity; the remainder has the sign of
	// the divisor or is zero.
	RoundFloor
	// RoundZero truncates toward zero; the remainder has the sign of the
	// dividend or is zero.
	RoundZero
)

func (r Rounding) String() string {
	switch r {
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundZero:
		return "zero"
	}
	return "unknown"
}

func badRounding(r Rounding) *errors.Error {
	return errors.Contract("unknown rounding mode %d", int(r))
}

// DivQ sets z to the quotient of n / d under the given rounding mode.
func (z *Int) DivQ(n, d *Int, mode Rounding) *Int {
	return z.apply2(n, d, func(dst, nr, dr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			engine.CdivQ(dst, nr, dr)
		case RoundFloor:
			engine.FdivQ(dst, nr, dr)
		case RoundZero:
			engine.TdivQ(dst, nr, dr)
		default:
			panic(badRounding(mode))
		}
	})
}

// DivR sets z to the remainder of n / d under the given rounding mode.
func (z *Int) DivR(n, d *Int, mode Rounding) *Int {
	return z.apply2(n, d, func(dst, nr, dr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			engine.CdivR(dst, nr, dr)
		case RoundFloor:
			engine.FdivR(dst, nr, dr)
		case RoundZero:
			engine.TdivR(dst, nr, dr)
		default:
			panic(badRounding(mode))
		}
	})
}

// DivQR sets z to the quotient and r to the remainder of n / d under the
// given rounding mode. z and r must be distinct values; r may live on
// any locale.
func (z *Int) DivQR(r, n, d *Int, mode Rounding) *Int {
	if r == z || (r.handle == z.handle && r.affinity == z.affinity) {
		panic(errors.Contract("quotient and remainder must be distinct"))
	}
	mustOn(z.rt, z.affinity, func(dom *locale.Domain) error {
		nr, relN := operand(dom, z.affinity, n)
		defer relN()
		dr, relD := operand(dom, z.affinity, d)
		defer relD()
		rr, commit := output(dom, z.affinity, r)
		defer commit()
		switch mode {
		case RoundCeiling:
			engine.CdivQR(z.rep(dom), rr, nr, dr)
		case RoundFloor:
			engine.FdivQR(z.rep(dom), rr, nr, dr)
		case RoundZero:
			engine.TdivQR(z.rep(dom), rr, nr, dr)
		default:
			panic(badRounding(mode))
		}
		return nil
	})
	return z
}

// DivQUint64 sets z to the quotient of n / d and returns the absolute
// value of the remainder.
func (z *Int) DivQUint64(n *Int, d uint64, mode Rounding) uint64 {
	var rem uint64
	z.apply1(n, func(dst, nr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			rem = engine.CdivQUint64(dst, nr, d)
		case RoundFloor:
			rem = engine.FdivQUint64(dst, nr, d)
		case RoundZero:
			rem = engine.TdivQUint64(dst, nr, d)
		default:
			panic(badRounding(mode))
		}
	})
	return rem
}

// DivRUint64 sets z to the remainder of n / d and returns its absolute
// value.
func (z *Int) DivRUint64(n *Int, d uint64, mode Rounding) uint64 {
	var rem uint64
	z.apply1(n, func(dst, nr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			rem = engine.CdivRUint64(dst, nr, d)
		case RoundFloor:
			rem = engine.FdivRUint64(dst, nr, d)
		case RoundZero:
			rem = engine.TdivRUint64(dst, nr, d)
		default:
			panic(badRounding(mode))
		}
	})
	return rem
}

// DivQ2Exp sets z to the quotient of n / 2^nbits.
func (z *Int) DivQ2Exp(n *Int, nbits uint, mode Rounding) *Int {
	return z.apply1(n, func(dst, nr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			engine.CdivQ2Exp(dst, nr, nbits)
		case RoundFloor:
			engine.FdivQ2Exp(dst, nr, nbits)
		case RoundZero:
			engine.TdivQ2Exp(dst, nr, nbits)
		default:
			panic(badRounding(mode))
		}
	})
}

// DivR2Exp sets z to the remainder of n / 2^nbits.
func (z *Int) DivR2Exp(n *Int, nbits uint, mode Rounding) *Int {
	return z.apply1(n, func(dst, nr *engine.Rep) {
		switch mode {
		case RoundCeiling:
			engine.CdivR2Exp(dst, nr, nbits)
		case RoundFloor:
			engine.FdivR2Exp(dst, nr, nbits)
		case RoundZero:
			engine.TdivR2Exp(dst, nr, nbits)
		default:
			panic(badRounding(mode))
		}
	})
}

// Mod sets z = n mod d with the result always in [0, |d|), and returns z.
func (z *Int) Mod(n, d *Int) *Int {
	return z.apply2(n, d, engine.Mod)
}

// ModUint64 sets z = n mod d and returns the result as a scalar.
func (z *Int) ModUint64(n *Int, d uint64) uint64 {
	var rem uint64
	z.apply1(n, func(dst, nr *engine.Rep) {
		rem = engine.ModUint64(dst, nr, d)
	})
	return rem
}

// DivExact sets z = n / d where d is known to divide n exactly.
func (z *Int) DivExact(n, d *Int) *Int {
	return z.apply2(n, d, engine.DivExact)
}

// Divisible reports whether d divides n.
func Divisible(n, d *Int) bool {
	var ok bool
	mustOn(n.rt, n.affinity, func(dom *locale.Domain) error {
		dr, rel := operand(dom, n.affinity, d)
		defer rel()
		ok = engine.Divisible(n.rep(dom), dr)
		return nil
	})
	return ok
}

// DivisibleUint64 reports whether d divides n.
func (n *Int) DivisibleUint64(d uint64) bool {
	var ok bool
	mustOn(n.rt, n.affinity, func(dom *locale.Domain) error {
		ok = engine.DivisibleUint64(n.rep(dom), d)
		return nil
	})
	return ok
}

// Divisible2Exp reports whether 2^nbits divides n.
func (n *Int) Divisible2Exp(nbits uint) bool {
	var ok bool
	mustOn(n.rt, n.affinity, func(dom *locale.Domain) error {
		ok = engine.Divisible2Exp(n.rep(dom), nbits)
		return nil
	})
	return ok
}
