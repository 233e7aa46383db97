package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
)

// Every operation executes on the receiver's locale. Operands living
// elsewhere are fetched as temporaries; the receiver's representation is
// mutated in place and never moves. Secondary outputs (remainders,
// Bezout coefficients) may live on other locales and are written home
// through the same image protocol.

func (z *Int) apply0(fn func(dst *engine.Rep)) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		fn(z.rep(d))
		return nil
	})
	return z
}

func (z *Int) apply1(x *Int, fn func(dst, a *engine.Rep)) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, rel := operand(d, z.affinity, x)
		defer rel()
		fn(z.rep(d), a)
		return nil
	})
	return z
}

func (z *Int) apply2(x, y *Int, fn func(dst, a, b *engine.Rep)) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, relA := operand(d, z.affinity, x)
		defer relA()
		b, relB := operand(d, z.affinity, y)
		defer relB()
		fn(z.rep(d), a, b)
		return nil
	})
	return z
}

// Add sets z = x + y.
func (z *Int) Add(x, y *Int) *Int {
	return z.apply2(x, y, engine.Add)
}

// AddUint64 sets z = x + v.
func (z *Int) AddUint64(x *Int, v uint64) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.AddUint64(dst, a, v) })
}

// Sub sets z = x - y.
func (z *Int) Sub(x, y *Int) *Int {
	return z.apply2(x, y, engine.Sub)
}

// SubUint64 sets z = x - v.
func (z *Int) SubUint64(x *Int, v uint64) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.SubUint64(dst, a, v) })
}

// Uint64Sub sets z = v - x.
func (z *Int) Uint64Sub(v uint64, x *Int) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.Uint64Sub(dst, v, a) })
}

// Mul sets z = x * y.
func (z *Int) Mul(x, y *Int) *Int {
	return z.apply2(x, y, engine.Mul)
}

// MulInt64 sets z = x * v.
func (z *Int) MulInt64(x *Int, v int64) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.MulInt64(dst, a, v) })
}

// MulUint64 sets z = x * v.
func (z *Int) MulUint64(x *Int, v uint64) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.MulUint64(dst, a, v) })
}

// AddMul sets z += x * y.
func (z *Int) AddMul(x, y *Int) *Int {
	return z.apply2(x, y, engine.AddMul)
}

// SubMul sets z -= x * y.
func (z *Int) SubMul(x, y *Int) *Int {
	return z.apply2(x, y, engine.SubMul)
}

// Mul2Exp sets z = x * 2^nbits.
func (z *Int) Mul2Exp(x *Int, nbits uint) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.Mul2Exp(dst, a, nbits) })
}

// Neg sets z = -x.
func (z *Int) Neg(x *Int) *Int {
	return z.apply1(x, engine.Neg)
}

// Abs sets z = |x|.
func (z *Int) Abs(x *Int) *Int {
	return z.apply1(x, engine.Abs)
}

// Pow sets z = b^e.
func (z *Int) Pow(b *Int, e uint64) *Int {
	return z.apply1(b, func(dst, a *engine.Rep) { engine.PowUint64(dst, a, e) })
}

// PowScalar sets z = b^e for scalar base and exponent.
func (z *Int) PowScalar(b, e uint64) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.Uint64PowUint64(dst, b, e) })
}

// PowM sets z = b^e mod m. A negative exponent requires b to be
// invertible modulo m.
func (z *Int) PowM(b, e, m *Int) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		br, relB := operand(d, z.affinity, b)
		defer relB()
		er, relE := operand(d, z.affinity, e)
		defer relE()
		mr, relM := operand(d, z.affinity, m)
		defer relM()
		engine.PowM(z.rep(d), br, er, mr)
		return nil
	})
	return z
}

// PowMUint64 sets z = b^e mod m for a scalar exponent.
func (z *Int) PowMUint64(b *Int, e uint64, m *Int) *Int {
	return z.apply2(b, m, func(dst, br, mr *engine.Rep) {
		engine.PowMUint64(dst, br, e, mr)
	})
}

// Gcd sets z = gcd(x, y), always non-negative.
func (z *Int) Gcd(x, y *Int) *Int {
	return z.apply2(x, y, engine.Gcd)
}

// GcdExt sets z = gcd(x, y) and the Bezout coefficients s and t such
// that z = x*s + y*t. Either of s, t may be nil; they may live on any
// locale.
func (z *Int) GcdExt(s, t, x, y *Int) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, relA := operand(d, z.affinity, x)
		defer relA()
		b, relB := operand(d, z.affinity, y)
		defer relB()

		var sr, tr *engine.Rep
		if s != nil {
			var commit func()
			sr, commit = output(d, z.affinity, s)
			defer commit()
		}
		if t != nil {
			var commit func()
			tr, commit = output(d, z.affinity, t)
			defer commit()
		}
		engine.GcdExt(z.rep(d), sr, tr, a, b)
		return nil
	})
	return z
}

// Lcm sets z = lcm(x, y), always non-negative.
func (z *Int) Lcm(x, y *Int) *Int {
	return z.apply2(x, y, engine.Lcm)
}

// Invert sets z = x^-1 mod m and reports whether the inverse exists;
// z is unchanged when it does not.
func (z *Int) Invert(x, m *Int) bool {
	ok := false
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, relA := operand(d, z.affinity, x)
		defer relA()
		mr, relM := operand(d, z.affinity, m)
		defer relM()
		ok = engine.Invert(z.rep(d), a, mr)
		return nil
	})
	return ok
}

// Jacobi returns the Jacobi symbol (a/b); b must be odd.
func Jacobi(a, b *Int) int {
	var res int
	mustOn(a.rt, a.affinity, func(d *locale.Domain) error {
		ar := a.rep(d)
		br, rel := operand(d, a.affinity, b)
		defer rel()
		res = engine.Jacobi(ar, br)
		return nil
	})
	return res
}

// Legendre returns the Legendre symbol (a/p); p must be an odd prime.
func Legendre(a, p *Int) int {
	var res int
	mustOn(a.rt, a.affinity, func(d *locale.Domain) error {
		ar := a.rep(d)
		pr, rel := operand(d, a.affinity, p)
		defer rel()
		res = engine.Legendre(ar, pr)
		return nil
	})
	return res
}

// Kronecker returns the Kronecker symbol (a/b) for any b.
func Kronecker(a, b *Int) int {
	var res int
	mustOn(a.rt, a.affinity, func(d *locale.Domain) error {
		ar := a.rep(d)
		br, rel := operand(d, a.affinity, b)
		defer rel()
		res = engine.Kronecker(ar, br)
		return nil
	})
	return res
}

// Remove sets z = x with all factors of f removed and returns how many
// were removed. |f| must exceed 1.
func (z *Int) Remove(x, f *Int) uint64 {
	var count uint64
	z.apply2(x, f, func(dst, a, fr *engine.Rep) {
		count = engine.Remove(dst, a, fr)
	})
	return count
}

// Fac sets z = n!.
func (z *Int) Fac(n uint64) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.Fac(dst, n) })
}

// Bin sets z = binomial(n, k).
func (z *Int) Bin(n, k uint64) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.Bin(dst, n, k) })
}

// Fib sets z = F(n), the n'th Fibonacci number.
func (z *Int) Fib(n uint64) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.Fib(dst, n) })
}

// Fib2 sets z = F(n) and prev = F(n-1).
func (z *Int) Fib2(prev *Int, n uint64) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		pr, commit := output(d, z.affinity, prev)
		defer commit()
		engine.Fib2(z.rep(d), pr, n)
		return nil
	})
	return z
}

// LucNum sets z = L(n), the n'th Lucas number.
func (z *Int) LucNum(n uint64) *Int {
	return z.apply0(func(dst *engine.Rep) { engine.LucNum(dst, n) })
}

// Root sets z = floor(x^(1/n)). n must be odd when x is negative.
func (z *Int) Root(x *Int, n uint) *Int {
	return z.apply1(x, func(dst, a *engine.Rep) { engine.Root(dst, a, n) })
}

// RootRem sets z = floor(x^(1/n)) and rem = x - z^n; x must be
// non-negative.
func (z *Int) RootRem(rem, x *Int, n uint) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, rel := operand(d, z.affinity, x)
		defer rel()
		rr, commit := output(d, z.affinity, rem)
		defer commit()
		engine.RootRem(z.rep(d), rr, a, n)
		return nil
	})
	return z
}

// Sqrt sets z = floor(sqrt(x)); x must be non-negative.
func (z *Int) Sqrt(x *Int) *Int {
	return z.apply1(x, engine.Sqrt)
}

// SqrtRem sets z = floor(sqrt(x)) and rem = x - z^2; x must be
// non-negative.
func (z *Int) SqrtRem(rem, x *Int) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		a, rel := operand(d, z.affinity, x)
		defer rel()
		rr, commit := output(d, z.affinity, rem)
		defer commit()
		engine.SqrtRem(z.rep(d), rr, a)
		return nil
	})
	return z
}

// ProbablyPrime reports whether x is prime with error probability at
// most 1/4^reps for composites.
func (x *Int) ProbablyPrime(reps int) bool {
	var prime bool
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		prime = engine.ProbablyPrime(x.rep(d), reps)
		return nil
	})
	return prime
}

// NextPrime sets z to the smallest probable prime greater than x.
func (z *Int) NextPrime(x *Int) *Int {
	return z.apply1(x, engine.NextPrime)
}
