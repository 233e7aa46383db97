package engine

import "math/big"

// Gcd sets dst = gcd(a, b), always non-negative.
func Gcd(dst, a, b *Rep) {
	var aa, bb big.Int
	aa.Abs(&a.z)
	bb.Abs(&b.z)
	if aa.Sign() == 0 {
		dst.z.Set(&bb)
		return
	}
	if bb.Sign() == 0 {
		dst.z.Set(&aa)
		return
	}
	dst.z.GCD(nil, nil, &aa, &bb)
}

// GcdExt sets g = gcd(a, b) and Bezout coefficients s, t such that
// g = a*s + b*t. Either of s, t may be nil.
func GcdExt(g, s, t, a, b *Rep) {
	// Compute on magnitudes and fix up coefficient signs afterwards.
	var aa, bb big.Int
	aa.Abs(&a.z)
	bb.Abs(&b.z)

	setCoeff := func(dst *Rep, v *big.Int, negate bool) {
		if dst == nil {
			return
		}
		dst.z.Set(v)
		if negate {
			dst.z.Neg(&dst.z)
		}
	}

	switch {
	case aa.Sign() == 0 && bb.Sign() == 0:
		g.z.SetInt64(0)
		setCoeff(s, big.NewInt(0), false)
		setCoeff(t, big.NewInt(0), false)
	case aa.Sign() == 0:
		g.z.Set(&bb)
		setCoeff(s, big.NewInt(0), false)
		setCoeff(t, big.NewInt(1), b.z.Sign() < 0)
	case bb.Sign() == 0:
		g.z.Set(&aa)
		setCoeff(s, big.NewInt(1), a.z.Sign() < 0)
		setCoeff(t, big.NewInt(0), false)
	default:
		var ss, tt big.Int
		g.z.GCD(&ss, &tt, &aa, &bb)
		setCoeff(s, &ss, a.z.Sign() < 0)
		setCoeff(t, &tt, b.z.Sign() < 0)
	}
}

// Lcm sets dst = lcm(a, b), always non-negative.
func Lcm(dst, a, b *Rep) {
	if a.z.Sign() == 0 || b.z.Sign() == 0 {
		dst.z.SetInt64(0)
		return
	}
	var g, p Rep
	Gcd(&g, a, b)
	p.z.Mul(&a.z, &b.z)
	p.z.Abs(&p.z)
	dst.z.Quo(&p.z, &g.z)
}

// Invert sets dst = a^-1 mod m and reports whether the inverse exists.
// dst is untouched when it does not.
func Invert(dst, a, m *Rep) bool {
	var t big.Int
	if t.ModInverse(&a.z, &m.z) == nil {
		return false
	}
	dst.z.Set(&t)
	return true
}

// Jacobi returns the Jacobi symbol (a/b); b must be odd.
func Jacobi(a, b *Rep) int {
	return big.Jacobi(&a.z, &b.z)
}

// Legendre returns the Legendre symbol (a/p); p must be an odd prime.
func Legendre(a, p *Rep) int {
	return big.Jacobi(&a.z, &p.z)
}

// Kronecker returns the Kronecker symbol (a/b), the extension of the
// Jacobi symbol to all b.
func Kronecker(a, b *Rep) int {
	var bb big.Int
	bb.Set(&b.z)

	if bb.Sign() == 0 {
		if a.z.CmpAbs(big.NewInt(1)) == 0 {
			return 1
		}
		return 0
	}

	result := 1
	if bb.Sign() < 0 {
		bb.Neg(&bb)
		if a.z.Sign() < 0 {
			result = -result
		}
	}

	// Factor out twos of b: each contributes (a/2), which is 0 for even
	// a, +1 for a = +-1 mod 8, -1 for a = +-3 mod 8.
	twos := 0
	for bb.Bit(0) == 0 {
		bb.Rsh(&bb, 1)
		twos++
	}
	if twos > 0 {
		if a.z.Bit(0) == 0 {
			return 0
		}
		if twos%2 == 1 {
			switch a.z.Bits()[0] & 7 {
			case 3, 5:
				result = -result
			}
		}
	}

	var ar Rep
	ar.z.Set(&a.z)
	var br Rep
	br.z.Set(&bb)
	return result * big.Jacobi(&ar.z, &br.z)
}

// Remove sets dst = a with all factors of f removed and returns how many
// were removed. f must have absolute value greater than 1.
func Remove(dst, a, f *Rep) uint64 {
	var cur, q, r big.Int
	cur.Set(&a.z)
	var count uint64
	if cur.Sign() != 0 {
		for {
			q.QuoRem(&cur, &f.z, &r)
			if r.Sign() != 0 {
				break
			}
			cur.Set(&q)
			count++
		}
	}
	dst.z.Set(&cur)
	return count
}

// Fac sets dst = n!.
func Fac(dst *Rep, n uint64) {
	dst.z.MulRange(1, int64(n))
}

// Bin sets dst = binomial(n, k).
func Bin(dst *Rep, n, k uint64) {
	dst.z.Binomial(int64(n), int64(k))
}

// fib2 returns (F(n), F(n+1)) by fast doubling.
func fib2(n uint64) (*big.Int, *big.Int) {
	if n == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	a, b := fib2(n / 2) // F(k), F(k+1)
	var c, d, t big.Int
	// F(2k) = F(k) * (2*F(k+1) - F(k))
	t.Lsh(b, 1)
	t.Sub(&t, a)
	c.Mul(a, &t)
	// F(2k+1) = F(k)^2 + F(k+1)^2
	var a2, b2 big.Int
	a2.Mul(a, a)
	b2.Mul(b, b)
	d.Add(&a2, &b2)
	if n%2 == 0 {
		return &c, &d
	}
	var e big.Int
	e.Add(&c, &d)
	return &d, &e
}

// Fib sets dst = F(n), the n'th Fibonacci number.
func Fib(dst *Rep, n uint64) {
	f, _ := fib2(n)
	dst.z.Set(f)
}

// Fib2 sets dst = F(n) and prev = F(n-1).
func Fib2(dst, prev *Rep, n uint64) {
	if n == 0 {
		dst.z.SetInt64(0)
		prev.z.SetInt64(1) // F(-1)
		return
	}
	f, _ := fib2(n - 1)
	prev.z.Set(f)
	fn, _ := fib2(n)
	dst.z.Set(fn)
}

// LucNum sets dst = L(n), the n'th Lucas number: L(n) = 2F(n+1) - F(n).
func LucNum(dst *Rep, n uint64) {
	f, fn1 := fib2(n)
	var t big.Int
	t.Lsh(fn1, 1)
	dst.z.Sub(&t, f)
}

// rootNewton returns floor(x^(1/n)) for x >= 0, n >= 1.
func rootNewton(x *big.Int, n uint) *big.Int {
	if x.Sign() == 0 || x.Cmp(big.NewInt(1)) == 0 || n == 1 {
		return new(big.Int).Set(x)
	}
	nn := big.NewInt(int64(n))
	nm1 := big.NewInt(int64(n - 1))

	// Initial guess: 2^(ceil(bitlen/n)), always >= the true root.
	shift := (uint(x.BitLen()) + n - 1) / n
	r := new(big.Int).Lsh(big.NewInt(1), shift)

	var rp, q, t big.Int
	for {
		// r' = ((n-1)*r + x / r^(n-1)) / n
		rp.Exp(r, nm1, nil)
		q.Quo(x, &rp)
		t.Mul(nm1, r)
		t.Add(&t, &q)
		t.Quo(&t, nn)
		if t.Cmp(r) >= 0 {
			return r
		}
		r.Set(&t)
	}
}

// Root sets dst = floor(a^(1/n)). An even root of a negative value is a
// hard fault.
func Root(dst, a *Rep, n uint) {
	if a.z.Sign() < 0 {
		if n%2 == 0 {
			panic("engine: even root of negative value")
		}
		var abs big.Int
		abs.Abs(&a.z)
		r := rootNewton(&abs, n)
		// For negatives, round toward zero on the magnitude gives the
		// value closest to zero; the engine truncates.
		dst.z.Neg(r)
		return
	}
	dst.z.Set(rootNewton(&a.z, n))
}

// RootRem sets root = floor(a^(1/n)) and rem = a - root^n; a must be
// non-negative.
func RootRem(root, rem, a *Rep, n uint) {
	r := rootNewton(&a.z, n)
	var p, nn big.Int
	nn.SetUint64(uint64(n))
	p.Exp(r, &nn, nil)
	rem.z.Sub(&a.z, &p)
	root.z.Set(r)
}

// Sqrt sets dst = floor(sqrt(a)); a must be non-negative.
func Sqrt(dst, a *Rep) {
	dst.z.Sqrt(&a.z)
}

// SqrtRem sets root = floor(sqrt(a)) and rem = a - root^2; a must be
// non-negative.
func SqrtRem(root, rem, a *Rep) {
	var r big.Int
	r.Sqrt(&a.z)
	var sq big.Int
	sq.Mul(&r, &r)
	rem.z.Sub(&a.z, &sq)
	root.z.Set(&r)
}

// ProbablyPrime reports whether x is prime with error probability at
// most 1/4^reps for composites.
func ProbablyPrime(x *Rep, reps int) bool {
	return x.z.ProbablyPrime(reps)
}

// NextPrime sets dst to the smallest probable prime greater than a.
func NextPrime(dst, a *Rep) {
	var c big.Int
	c.Set(&a.z)
	two := big.NewInt(2)
	if c.Cmp(two) < 0 {
		dst.z.Set(two)
		return
	}
	c.Add(&c, big.NewInt(1))
	if c.Bit(0) == 0 {
		c.Add(&c, big.NewInt(1))
	}
	for !c.ProbablyPrime(25) {
		c.Add(&c, two)
	}
	dst.z.Set(&c)
}
