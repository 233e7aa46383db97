package engine

import "math/big"

// Add sets dst = a + b.
func Add(dst, a, b *Rep) {
	dst.z.Add(&a.z, &b.z)
}

// AddUint64 sets dst = a + v.
func AddUint64(dst, a *Rep, v uint64) {
	var t big.Int
	dst.z.Add(&a.z, t.SetUint64(v))
}

// Sub sets dst = a - b.
func Sub(dst, a, b *Rep) {
	dst.z.Sub(&a.z, &b.z)
}

// SubUint64 sets dst = a - v.
func SubUint64(dst, a *Rep, v uint64) {
	var t big.Int
	dst.z.Sub(&a.z, t.SetUint64(v))
}

// Uint64Sub sets dst = v - a.
func Uint64Sub(dst *Rep, v uint64, a *Rep) {
	var t big.Int
	dst.z.Sub(t.SetUint64(v), &a.z)
}

// Mul sets dst = a * b.
func Mul(dst, a, b *Rep) {
	dst.z.Mul(&a.z, &b.z)
}

// MulInt64 sets dst = a * v.
func MulInt64(dst, a *Rep, v int64) {
	var t big.Int
	dst.z.Mul(&a.z, t.SetInt64(v))
}

// MulUint64 sets dst = a * v.
func MulUint64(dst, a *Rep, v uint64) {
	var t big.Int
	dst.z.Mul(&a.z, t.SetUint64(v))
}

// AddMul sets dst += a * b.
func AddMul(dst, a, b *Rep) {
	var t big.Int
	t.Mul(&a.z, &b.z)
	dst.z.Add(&dst.z, &t)
}

// SubMul sets dst -= a * b.
func SubMul(dst, a, b *Rep) {
	var t big.Int
	t.Mul(&a.z, &b.z)
	dst.z.Sub(&dst.z, &t)
}

// Mul2Exp sets dst = a * 2^nbits.
func Mul2Exp(dst, a *Rep, nbits uint) {
	dst.z.Lsh(&a.z, nbits)
}

// Neg sets dst = -a.
func Neg(dst, a *Rep) {
	dst.z.Neg(&a.z)
}

// Abs sets dst = |a|.
func Abs(dst, a *Rep) {
	dst.z.Abs(&a.z)
}

// PowUint64 sets dst = b^e.
func PowUint64(dst, b *Rep, e uint64) {
	var t big.Int
	dst.z.Exp(&b.z, t.SetUint64(e), nil)
}

// Uint64PowUint64 sets dst = b^e for scalar base and exponent.
func Uint64PowUint64(dst *Rep, b, e uint64) {
	var bb, ee big.Int
	dst.z.Exp(bb.SetUint64(b), ee.SetUint64(e), nil)
}

// PowM sets dst = b^e mod m. A negative exponent requires b to be
// invertible modulo m; the engine faults (panics) otherwise.
func PowM(dst, b, e, m *Rep) {
	base := &b.z
	exp := &e.z
	if exp.Sign() < 0 {
		var inv, negExp big.Int
		if inv.ModInverse(&b.z, &m.z) == nil {
			panic("engine: powm with non-invertible base and negative exponent")
		}
		negExp.Neg(exp)
		dst.z.Exp(&inv, &negExp, &m.z)
		return
	}
	dst.z.Exp(base, exp, &m.z)
}

// PowMUint64 sets dst = b^e mod m for a scalar exponent.
func PowMUint64(dst, b *Rep, e uint64, m *Rep) {
	var t big.Int
	dst.z.Exp(&b.z, t.SetUint64(e), &m.z)
}
