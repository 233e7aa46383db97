package mpint

import (
	"github.com/wippyai/mp-runtime/arena"
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/errors"
	"github.com/wippyai/mp-runtime/locale"
)

// Int is a locale-aware arbitrary-precision integer. Its representation
// lives in the arena of the locale named by its affinity; the Int itself
// is a light handle that can be held anywhere.
//
// Every Int is either the single owner of its representation (Destroy
// releases it, exactly once) or a non-owning alias of another Int's
// representation. An alias must not outlive its owner; the runtime does
// not police this, it is a documented precondition.
//
// Operations mutate the receiver's representation in place and never
// move it: cross-locale operands are fetched as local temporaries, the
// receiver's storage stays home. Writes to a single Int must be
// externally serialized; the engine assumes a single writer.
type Int struct {
	rt       *locale.Runtime
	handle   arena.Handle
	affinity locale.ID
	owned    bool
}

// mustOn runs fn on the named locale and converts block errors into
// panics: the value layer's own blocks only fail on broken caller
// contracts (use after destroy, arena closed mid-operation).
func mustOn(rt *locale.Runtime, id locale.ID, fn func(*locale.Domain) error) {
	if err := rt.On(id, fn); err != nil {
		panic(err)
	}
}

// rep resolves the receiver's representation on its home domain.
func (x *Int) rep(d *locale.Domain) *engine.Rep {
	v, ok := d.Store().GetTyped(x.handle, arena.TypeIntRep)
	if !ok {
		panic(errors.Contract("value used after destroy on locale %d", x.affinity))
	}
	return v.(*engine.Rep)
}

// alloc creates an owned representation on the target locale and wires
// the handle, running init to populate the fresh storage.
func alloc(rt *locale.Runtime, at locale.ID, init func(*locale.Domain, *engine.Rep)) *Int {
	z := &Int{rt: rt, affinity: at, owned: true}
	mustOn(rt, at, func(d *locale.Domain) error {
		r := new(engine.Rep)
		init(d, r)
		h, err := d.Store().Create(arena.TypeIntRep, r)
		if err != nil {
			return err
		}
		z.handle = h
		return nil
	})
	return z
}

// NewZero constructs a zero value living on the given locale.
func NewZero(rt *locale.Runtime, at locale.ID) *Int {
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init(r)
	})
}

// NewCap constructs a zero value with storage pre-sized for nbits bits.
func NewCap(rt *locale.Runtime, at locale.ID, nbits uint) *Int {
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init2(r, nbits)
	})
}

// NewInt constructs a value from a native signed integer.
func NewInt(rt *locale.Runtime, at locale.ID, v int64) *Int {
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init(r)
		engine.SetInt64(r, v)
	})
}

// NewUint constructs a value from a native unsigned integer.
func NewUint(rt *locale.Runtime, at locale.ID, v uint64) *Int {
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init(r)
		engine.SetUint64(r, v)
	})
}

// NewFloat constructs a value from a double, truncating toward zero.
// The scalar must be finite; see SetTrustCasts.
func NewFloat(rt *locale.Runtime, at locale.ID, f float64) *Int {
	checkFinite(f)
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init(r)
		engine.SetFloat64(r, f)
	})
}

// NewString constructs a value by parsing text in the given base
// (0 or 2..62; 0 infers the base from the prefix). Malformed text is a
// recoverable format error and leaves nothing allocated.
func NewString(rt *locale.Runtime, at locale.ID, text string, base int) (*Int, error) {
	var parseErr error
	z := alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		engine.Init(r)
		parseErr = engine.SetString(r, text, base)
	})
	if parseErr != nil {
		z.Destroy()
		return nil, parseErr
	}
	return z, nil
}

// MustString is the halting variant of NewString: malformed text ends
// the process instead of returning an error.
func MustString(rt *locale.Runtime, at locale.ID, text string, base int) *Int {
	z, err := NewString(rt, at, text, base)
	if err != nil {
		locale.Logger().Fatal("bad integer literal: " + err.Error())
	}
	return z
}

// NewCopy constructs a deep copy of src living on the given locale,
// fetching src's image when it lives elsewhere.
func NewCopy(rt *locale.Runtime, at locale.ID, src *Int) *Int {
	return alloc(rt, at, func(d *locale.Domain, r *engine.Rep) {
		if src.affinity == at {
			engine.Init(r)
			engine.Set(r, src.rep(d))
			return
		}
		img := fetchImage(src)
		engine.Import(r, img)
		engine.FreeImage(img)
	})
}

// NewAlias constructs a non-owning view of src's representation, on
// src's own locale: no allocation, shared storage. The alias must not
// outlive src and must not be written while src is in use.
func NewAlias(src *Int) *Int {
	return &Int{
		rt:       src.rt,
		handle:   src.handle,
		affinity: src.affinity,
		owned:    false,
	}
}

// Destroy releases the value's storage if it owns any. It always leaves
// the value unowned, so destroying twice (or destroying an alias) is a
// no-op.
func (x *Int) Destroy() {
	if !x.owned {
		x.handle = 0
		return
	}
	x.owned = false
	if x.rt.Closed() {
		// The locale's arena already released everything.
		x.handle = 0
		return
	}
	h := x.handle
	x.handle = 0
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		d.Store().Drop(h)
		return nil
	})
}

// Reinit rebinds the value to src's representation, preserving the
// value's identity. With deep=true the value ends up owning storage
// (reused when it already owns some) holding a copy of src; with
// deep=false it becomes a non-owning alias of src, which requires src
// to live on the same locale.
func (x *Int) Reinit(src *Int, deep bool) {
	if !deep {
		if src.affinity != x.affinity {
			panic(errors.Contract("alias across locales %d and %d", x.affinity, src.affinity))
		}
		if x.owned {
			h := x.handle
			mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
				d.Store().Drop(h)
				return nil
			})
		}
		x.handle = src.handle
		x.owned = false
		return
	}

	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		var dst *engine.Rep
		if x.owned {
			dst = x.rep(d)
		} else {
			dst = new(engine.Rep)
			engine.Init(dst)
			h, err := d.Store().Create(arena.TypeIntRep, dst)
			if err != nil {
				return err
			}
			x.handle = h
			x.owned = true
		}
		if src.affinity == x.affinity {
			engine.Set(dst, src.rep(d))
			return nil
		}
		img := fetchImage(src)
		var tmp engine.Rep
		engine.Import(&tmp, img)
		engine.FreeImage(img)
		engine.Set(dst, &tmp)
		engine.Clear(&tmp)
		return nil
	})
}

// Set assigns x's value to z: always a deep copy into z's own storage,
// executing on z's locale. Unlike NewAlias this never shares storage;
// the cross-locale case degrades to a fetch and copy.
func (z *Int) Set(x *Int) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		if x.affinity == z.affinity {
			engine.Set(z.rep(d), x.rep(d))
			return nil
		}
		img := fetchImage(x)
		var tmp engine.Rep
		engine.Import(&tmp, img)
		engine.FreeImage(img)
		engine.Set(z.rep(d), &tmp)
		engine.Clear(&tmp)
		return nil
	})
	return z
}

// SetInt64 assigns a native signed integer to z.
func (z *Int) SetInt64(v int64) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		engine.SetInt64(z.rep(d), v)
		return nil
	})
	return z
}

// SetUint64 assigns a native unsigned integer to z.
func (z *Int) SetUint64(v uint64) *Int {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		engine.SetUint64(z.rep(d), v)
		return nil
	})
	return z
}

// SetString assigns parsed text to z. Malformed text is a recoverable
// format error and leaves z unchanged.
func (z *Int) SetString(text string, base int) error {
	var parseErr error
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		parseErr = engine.SetString(z.rep(d), text, base)
		return nil
	})
	return parseErr
}

// Swap exchanges the values of a and b. On the same locale this is a
// handle exchange with no copying. Across locales neither value may
// change its affinity, so the swap stages a's image and performs a
// three-way reassignment through owned temporaries instead.
func Swap(a, b *Int) {
	if a.affinity == b.affinity {
		mustOn(a.rt, a.affinity, func(d *locale.Domain) error {
			a.handle, b.handle = b.handle, a.handle
			a.owned, b.owned = b.owned, a.owned
			return nil
		})
		return
	}

	imgA := fetchImage(a)
	a.Set(b)
	mustOn(b.rt, b.affinity, func(d *locale.Domain) error {
		var tmp engine.Rep
		engine.Import(&tmp, imgA)
		engine.Set(b.rep(d), &tmp)
		engine.Clear(&tmp)
		return nil
	})
	engine.FreeImage(imgA)
}

// Swap exchanges the receiver's value with x's.
func (z *Int) Swap(x *Int) {
	Swap(z, x)
}

// Realloc grows z's storage to hold at least nbits bits, preserving its
// value. Growth is always explicit; no operation reallocates silently.
func (z *Int) Realloc(nbits uint) {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		engine.Realloc2(z.rep(d), nbits)
		return nil
	})
}

// Affinity returns the locale hosting the value's storage.
func (x *Int) Affinity() locale.ID {
	return x.affinity
}

// Owned reports whether the value owns its representation.
func (x *Int) Owned() bool {
	return x.owned
}

// Runtime returns the locale runtime the value belongs to.
func (x *Int) Runtime() *locale.Runtime {
	return x.rt
}
