package engine

import "math/big"

// The division entry points come in three parallel families by rounding
// direction: cdiv rounds the quotient toward +infinity, fdiv toward
// -infinity, tdiv toward zero. In every family n = q*d + r with |r| < |d|;
// the family fixes the sign convention of r. Combined quotient/remainder
// entry points require q and r to be distinct representations. Division
// by zero is a hard fault (panic).

func tdivQR(q, r, n, d *big.Int) {
	var qt, rt big.Int
	qt.QuoRem(n, d, &rt)
	q.Set(&qt)
	r.Set(&rt)
}

func fdivQR(q, r, n, d *big.Int) {
	var qt, rt big.Int
	qt.QuoRem(n, d, &rt)
	if rt.Sign() != 0 && (rt.Sign() < 0) != (d.Sign() < 0) {
		rt.Add(&rt, d)
		qt.Sub(&qt, big.NewInt(1))
	}
	q.Set(&qt)
	r.Set(&rt)
}

func cdivQR(q, r, n, d *big.Int) {
	var qt, rt big.Int
	qt.QuoRem(n, d, &rt)
	if rt.Sign() != 0 && (rt.Sign() < 0) == (d.Sign() < 0) {
		rt.Sub(&rt, d)
		qt.Add(&qt, big.NewInt(1))
	}
	q.Set(&qt)
	r.Set(&rt)
}

// CdivQ sets q = ceil(n / d).
func CdivQ(q, n, d *Rep) {
	var r big.Int
	cdivQR(&q.z, &r, &n.z, &d.z)
}

// CdivR sets r = n - d*ceil(n/d); r has the opposite sign of d or is zero.
func CdivR(r, n, d *Rep) {
	var q big.Int
	cdivQR(&q, &r.z, &n.z, &d.z)
}

// CdivQR sets both quotient and remainder; q and r must be distinct.
func CdivQR(q, r, n, d *Rep) {
	cdivQR(&q.z, &r.z, &n.z, &d.z)
}

// FdivQ sets q = floor(n / d).
func FdivQ(q, n, d *Rep) {
	var r big.Int
	fdivQR(&q.z, &r, &n.z, &d.z)
}

// FdivR sets r = n - d*floor(n/d); r has the sign of d or is zero.
func FdivR(r, n, d *Rep) {
	var q big.Int
	fdivQR(&q, &r.z, &n.z, &d.z)
}

// FdivQR sets both quotient and remainder; q and r must be distinct.
func FdivQR(q, r, n, d *Rep) {
	fdivQR(&q.z, &r.z, &n.z, &d.z)
}

// TdivQ sets q = trunc(n / d), rounding toward zero.
func TdivQ(q, n, d *Rep) {
	q.z.Quo(&n.z, &d.z)
}

// TdivR sets r = n - d*trunc(n/d); r has the sign of n or is zero.
func TdivR(r, n, d *Rep) {
	r.z.Rem(&n.z, &d.z)
}

// TdivQR sets both quotient and remainder; q and r must be distinct.
func TdivQR(q, r, n, d *Rep) {
	tdivQR(&q.z, &r.z, &n.z, &d.z)
}

func divQRUint64(family func(q, r, n, d *big.Int), q, n *Rep, d uint64) uint64 {
	var dd, qt, rt big.Int
	dd.SetUint64(d)
	family(&qt, &rt, &n.z, &dd)
	if q != nil {
		q.z.Set(&qt)
	}
	rt.Abs(&rt)
	return rt.Uint64()
}

// CdivQUint64 sets q = ceil(n / d) and returns |remainder|.
func CdivQUint64(q, n *Rep, d uint64) uint64 {
	return divQRUint64(cdivQR, q, n, d)
}

// FdivQUint64 sets q = floor(n / d) and returns |remainder|.
func FdivQUint64(q, n *Rep, d uint64) uint64 {
	return divQRUint64(fdivQR, q, n, d)
}

// TdivQUint64 sets q = trunc(n / d) and returns |remainder|.
func TdivQUint64(q, n *Rep, d uint64) uint64 {
	return divQRUint64(tdivQR, q, n, d)
}

// CdivRUint64 sets r to the ceiling-family remainder of n / d and
// returns its absolute value.
func CdivRUint64(r, n *Rep, d uint64) uint64 {
	var dd, qt big.Int
	dd.SetUint64(d)
	cdivQR(&qt, &r.z, &n.z, &dd)
	var abs big.Int
	abs.Abs(&r.z)
	return abs.Uint64()
}

// FdivRUint64 sets r to the floor-family remainder of n / d and returns
// its absolute value.
func FdivRUint64(r, n *Rep, d uint64) uint64 {
	var dd, qt big.Int
	dd.SetUint64(d)
	fdivQR(&qt, &r.z, &n.z, &dd)
	var abs big.Int
	abs.Abs(&r.z)
	return abs.Uint64()
}

// TdivRUint64 sets r to the truncating-family remainder of n / d and
// returns its absolute value.
func TdivRUint64(r, n *Rep, d uint64) uint64 {
	var dd, qt big.Int
	dd.SetUint64(d)
	tdivQR(&qt, &r.z, &n.z, &dd)
	var abs big.Int
	abs.Abs(&r.z)
	return abs.Uint64()
}

func pow2(nbits uint) *big.Int {
	var p big.Int
	return p.Lsh(big.NewInt(1), nbits)
}

// CdivQ2Exp sets q = ceil(n / 2^nbits).
func CdivQ2Exp(q, n *Rep, nbits uint) {
	var r big.Int
	cdivQR(&q.z, &r, &n.z, pow2(nbits))
}

// FdivQ2Exp sets q = floor(n / 2^nbits), an arithmetic right shift.
func FdivQ2Exp(q, n *Rep, nbits uint) {
	q.z.Rsh(&n.z, nbits)
}

// TdivQ2Exp sets q = trunc(n / 2^nbits).
func TdivQ2Exp(q, n *Rep, nbits uint) {
	var r big.Int
	tdivQR(&q.z, &r, &n.z, pow2(nbits))
}

// CdivR2Exp sets r to the ceiling-family remainder of n / 2^nbits.
func CdivR2Exp(r, n *Rep, nbits uint) {
	var q big.Int
	cdivQR(&q, &r.z, &n.z, pow2(nbits))
}

// FdivR2Exp sets r to the floor-family remainder of n / 2^nbits.
func FdivR2Exp(r, n *Rep, nbits uint) {
	var q big.Int
	fdivQR(&q, &r.z, &n.z, pow2(nbits))
}

// TdivR2Exp sets r to the truncating-family remainder of n / 2^nbits.
func TdivR2Exp(r, n *Rep, nbits uint) {
	var q big.Int
	tdivQR(&q, &r.z, &n.z, pow2(nbits))
}

// Mod sets dst = n mod d with the sign of d ignored: the result is
// always in [0, |d|).
func Mod(dst, n, d *Rep) {
	dst.z.Mod(&n.z, &d.z)
}

// ModUint64 sets dst = n mod d and returns the result as a scalar.
func ModUint64(dst, n *Rep, d uint64) uint64 {
	var dd big.Int
	dd.SetUint64(d)
	dst.z.Mod(&n.z, &dd)
	return dst.z.Uint64()
}

// DivExact sets dst = n / d where d is known to divide n exactly. The
// result is undefined otherwise.
func DivExact(dst, n, d *Rep) {
	dst.z.Quo(&n.z, &d.z)
}

// Divisible reports whether d divides n.
func Divisible(n, d *Rep) bool {
	if d.z.Sign() == 0 {
		return n.z.Sign() == 0
	}
	var r big.Int
	return r.Rem(&n.z, &d.z).Sign() == 0
}

// DivisibleUint64 reports whether d divides n.
func DivisibleUint64(n *Rep, d uint64) bool {
	if d == 0 {
		return n.z.Sign() == 0
	}
	var dd, r big.Int
	return r.Rem(&n.z, dd.SetUint64(d)).Sign() == 0
}

// Divisible2Exp reports whether 2^nbits divides n.
func Divisible2Exp(n *Rep, nbits uint) bool {
	var r big.Int
	return r.Rem(&n.z, pow2(nbits)).Sign() == 0
}
