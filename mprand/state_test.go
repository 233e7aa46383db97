package mprand_test

import (
	"testing"

	"github.com/wippyai/mp-runtime/locale"
	"github.com/wippyai/mp-runtime/mpint"
	"github.com/wippyai/mp-runtime/mprand"
)

func newRuntime(t *testing.T, locales int) *locale.Runtime {
	t.Helper()
	rt, err := locale.New(locale.Options{Locales: locales})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rt.Close() })
	return rt
}

func TestState_DeterministicStream(t *testing.T) {
	rt := newRuntime(t, 1)

	a := mprand.New(rt, 0)
	defer a.Destroy()
	b := mprand.New(rt, 0)
	defer b.Destroy()
	a.SeedUint64(42)
	b.SeedUint64(42)

	x := mpint.NewZero(rt, 0)
	defer x.Destroy()
	y := mpint.NewZero(rt, 0)
	defer y.Destroy()

	for i := 0; i < 10; i++ {
		a.Urandomb(x, 200)
		b.Urandomb(y, 200)
		if x.Cmp(y) != 0 {
			t.Fatalf("draw %d diverged: %s vs %s", i, x, y)
		}
		if x.Sign() < 0 || x.BitLen() > 200 {
			t.Fatalf("draw %d out of range: %s", i, x)
		}
	}
}

func TestState_UrandommBound(t *testing.T) {
	rt := newRuntime(t, 2)

	s := mprand.New(rt, 0)
	defer s.Destroy()
	s.SeedUint64(7)

	bound := mpint.NewInt(rt, 1, 1000) // remote bound
	defer bound.Destroy()
	v := mpint.NewZero(rt, 1) // remote destination
	defer v.Destroy()

	for i := 0; i < 50; i++ {
		s.Urandomm(v, bound)
		if v.Sign() < 0 || v.Cmp(bound) >= 0 {
			t.Fatalf("draw %d out of [0, 1000): %s", i, v)
		}
	}
	if v.Affinity() != 1 {
		t.Fatalf("destination moved to locale %d", v.Affinity())
	}
}

func TestState_CopyContinuesStream(t *testing.T) {
	rt := newRuntime(t, 2)

	src := mprand.NewPCG(rt, 0)
	defer src.Destroy()
	src.SeedUint64(99)

	warm := mpint.NewZero(rt, 0)
	defer warm.Destroy()
	src.Urandomb(warm, 64)

	// The copy lives on another locale yet continues the same stream.
	cp := mprand.NewCopy(rt, 1, src)
	defer cp.Destroy()
	if cp.Affinity() != 1 {
		t.Fatalf("copy affinity = %d", cp.Affinity())
	}

	a := mpint.NewZero(rt, 0)
	defer a.Destroy()
	b := mpint.NewZero(rt, 0)
	defer b.Destroy()
	for i := 0; i < 5; i++ {
		src.Urandomb(a, 128)
		cp.Urandomb(b, 128)
		if a.Cmp(b) != 0 {
			t.Fatalf("draw %d diverged after copy: %s vs %s", i, a, b)
		}
	}
}

func TestState_LC2Exp(t *testing.T) {
	rt := newRuntime(t, 1)

	s, err := mprand.NewLC2ExpSize(rt, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	s.SeedUint64(1)

	v := mpint.NewZero(rt, 0)
	defer v.Destroy()
	s.Urandomb(v, 100)
	if v.Sign() < 0 || v.BitLen() > 100 {
		t.Fatalf("lc draw out of range: %s", v)
	}

	if _, err := mprand.NewLC2ExpSize(rt, 0, 256); err == nil {
		t.Fatal("expected error for oversized LC modulus")
	}

	// Explicit parameters accepted as well.
	a := mpint.NewInt(rt, 0, 1103515245)
	defer a.Destroy()
	lc := mprand.NewLC2Exp(rt, 0, a, 12345, 32)
	defer lc.Destroy()
	lc.SeedUint64(1)
	lc.Urandomb(v, 16)
	if v.BitLen() > 16 {
		t.Fatalf("lc draw out of range: %s", v)
	}
}

func TestState_DestroyIdempotent(t *testing.T) {
	rt := newRuntime(t, 1)

	s := mprand.New(rt, 0)
	s.Destroy()
	s.Destroy()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on use after destroy")
		}
	}()
	s.SeedUint64(1)
}
