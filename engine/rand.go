package engine

import (
	"math/big"
	mrand "math/rand/v2"

	"github.com/wippyai/mp-runtime/errors"
)

// RandAlg identifies the generator algorithm behind a RandState.
type RandAlg uint8

const (
	// AlgChaCha8 is the default algorithm: the ChaCha8-based generator.
	AlgChaCha8 RandAlg = iota
	// AlgPCG is the alternate named algorithm: a PCG generator.
	AlgPCG
	// AlgLC2Exp is a linear congruential generator modulo a power of two.
	AlgLC2Exp
)

// RandState is the opaque generator-state resource. Like a Rep it is a
// resource with a fixed identity: initialize once, mutate in place,
// never copy by value.
type RandState struct {
	chacha *mrand.ChaCha8
	pcg    *mrand.PCG
	lc     *lcState
	alg    RandAlg
}

// lcState is x' = (a*x + c) mod 2^m2exp; each step yields the high half
// of the state bits, the low half being too regular to hand out.
type lcState struct {
	a     big.Int
	x     big.Int
	c     uint64
	m2exp uint
}

// RandInitDefault initializes s with the default algorithm and seed.
func RandInitDefault(s *RandState) {
	s.alg = AlgChaCha8
	s.chacha = mrand.NewChaCha8([32]byte{})
	s.pcg = nil
	s.lc = nil
}

// RandInitPCG initializes s with the alternate PCG algorithm.
func RandInitPCG(s *RandState) {
	s.alg = AlgPCG
	s.pcg = mrand.NewPCG(0, 0)
	s.chacha = nil
	s.lc = nil
}

// RandInitLC2Exp initializes s as a linear congruential generator with
// multiplier a, additive constant c, and modulus 2^m2exp.
func RandInitLC2Exp(s *RandState, a *Rep, c uint64, m2exp uint) {
	s.alg = AlgLC2Exp
	s.lc = &lcState{c: c, m2exp: m2exp}
	s.lc.a.Set(&a.z)
	s.chacha = nil
	s.pcg = nil
}

// lc2expTable holds multiplier/constant/modulus choices by requested
// size, mirroring the engine's size-parameterized LC constructor.
var lc2expTable = []struct {
	maxSize uint
	a       string
	c       uint64
	m2exp   uint
}{
	{32, "1103515245", 12345, 32},
	{64, "6364136223846793005", 1442695040888963407, 64},
	{128, "47026247687942121848144207491837523525", 1442695040888963407, 128},
}

// RandInitLC2ExpSize initializes s as an LC generator sized so that the
// modulus has at least size bits. Sizes above 128 are unsupported.
func RandInitLC2ExpSize(s *RandState, size uint) error {
	for _, e := range lc2expTable {
		if size <= e.maxSize {
			var a Rep
			// Table constants are well-formed decimal.
			if err := SetString(&a, e.a, 10); err != nil {
				return err
			}
			RandInitLC2Exp(s, &a, e.c, e.m2exp)
			return nil
		}
	}
	return errors.New(errors.PhaseInit, errors.KindOutOfRange).
		Detail("no LC parameters for size %d (max 128)", size).
		Value(size).
		Build()
}

// RandInitSet initializes dst as a deep copy of src: the two states
// produce identical streams from here on but advance independently.
func RandInitSet(dst, src *RandState) {
	img := RandExport(src)
	RandImport(dst, img)
	FreeRandImage(img)
}

// RandSeed reseeds s from an arbitrary-precision seed.
func RandSeed(s *RandState, seed *Rep) {
	switch s.alg {
	case AlgChaCha8:
		var key [32]byte
		b := seed.z.Bytes()
		if len(b) > 32 {
			b = b[len(b)-32:]
		}
		copy(key[32-len(b):], b)
		s.chacha.Seed(key)
	case AlgPCG:
		var lo, hi big.Int
		lo.Abs(&seed.z)
		hi.Rsh(&lo, 64)
		s.pcg.Seed(lo.Uint64(), hi.Uint64())
	case AlgLC2Exp:
		s.lc.x.Abs(&seed.z)
		maskBits(&s.lc.x, s.lc.m2exp)
	}
}

// RandSeedUint64 reseeds s from a scalar seed.
func RandSeedUint64(s *RandState, seed uint64) {
	var r Rep
	SetUint64(&r, seed)
	RandSeed(s, &r)
}

func maskBits(z *big.Int, nbits uint) {
	var mask big.Int
	mask.Lsh(big.NewInt(1), nbits)
	mask.Sub(&mask, big.NewInt(1))
	z.And(z, &mask)
}

func (l *lcState) step() {
	l.x.Mul(&l.x, &l.a)
	var c big.Int
	l.x.Add(&l.x, c.SetUint64(l.c))
	maskBits(&l.x, l.m2exp)
}

// randBits appends nbits of generator output into dst.
func randBits(dst *big.Int, s *RandState, nbits uint) {
	dst.SetInt64(0)
	switch s.alg {
	case AlgChaCha8, AlgPCG:
		var t big.Int
		words := (nbits + 63) / 64
		for i := uint(0); i < words; i++ {
			var w uint64
			if s.alg == AlgChaCha8 {
				w = s.chacha.Uint64()
			} else {
				w = s.pcg.Uint64()
			}
			t.SetUint64(w)
			t.Lsh(&t, 64*i)
			dst.Or(dst, &t)
		}
	case AlgLC2Exp:
		out := s.lc.m2exp - s.lc.m2exp/2
		if out == 0 {
			out = 1
		}
		var t big.Int
		var got uint
		for got < nbits {
			s.lc.step()
			t.Rsh(&s.lc.x, s.lc.m2exp/2)
			t.Lsh(&t, got)
			dst.Or(dst, &t)
			got += out
		}
	}
	maskBits(dst, nbits)
}

// RandUrandomb sets dst to a uniformly distributed value in [0, 2^nbits).
func RandUrandomb(dst *Rep, s *RandState, nbits uint) {
	randBits(&dst.z, s, nbits)
}

// RandUrandomm sets dst to a uniformly distributed value in [0, bound);
// bound must be positive.
func RandUrandomm(dst *Rep, s *RandState, bound *Rep) {
	if bound.z.Sign() <= 0 {
		panic("engine: urandomm with non-positive bound")
	}
	nbits := uint(bound.z.BitLen())
	var v big.Int
	for {
		randBits(&v, s, nbits)
		if v.Cmp(&bound.z) < 0 {
			dst.z.Set(&v)
			return
		}
	}
}

// RandImage is the transportable image of a generator state, the
// random-state counterpart of Image.
type RandImage struct {
	State []byte
	A     Image
	X     Image
	C     uint64
	M2Exp uint
	Alg   RandAlg
}

// RandExport captures s's current state for cross-locale transport.
func RandExport(s *RandState) RandImage {
	img := RandImage{Alg: s.alg}
	switch s.alg {
	case AlgChaCha8:
		b, err := s.chacha.MarshalBinary()
		if err != nil {
			panic("engine: chacha8 state marshal: " + err.Error())
		}
		img.State = b
	case AlgPCG:
		b, err := s.pcg.MarshalBinary()
		if err != nil {
			panic("engine: pcg state marshal: " + err.Error())
		}
		img.State = b
	case AlgLC2Exp:
		img.A = exportBig(&s.lc.a)
		img.X = exportBig(&s.lc.x)
		img.C = s.lc.c
		img.M2Exp = s.lc.m2exp
	}
	return img
}

// RandImport reconstructs dst from a captured state image.
func RandImport(dst *RandState, img RandImage) {
	dst.alg = img.Alg
	dst.chacha = nil
	dst.pcg = nil
	dst.lc = nil
	switch img.Alg {
	case AlgChaCha8:
		dst.chacha = mrand.NewChaCha8([32]byte{})
		if err := dst.chacha.UnmarshalBinary(img.State); err != nil {
			panic("engine: chacha8 state unmarshal: " + err.Error())
		}
	case AlgPCG:
		dst.pcg = mrand.NewPCG(0, 0)
		if err := dst.pcg.UnmarshalBinary(img.State); err != nil {
			panic("engine: pcg state unmarshal: " + err.Error())
		}
	case AlgLC2Exp:
		dst.lc = &lcState{c: img.C, m2exp: img.M2Exp}
		importBig(&dst.lc.a, img.A)
		importBig(&dst.lc.x, img.X)
	}
}

// FreeRandImage returns an image's limb buffers to the allocator.
func FreeRandImage(img RandImage) {
	FreeImage(img.A)
	FreeImage(img.X)
}
