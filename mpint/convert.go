package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/errors"
	"github.com/wippyai/mp-runtime/locale"
)

// Int64 returns x as an int64. Unless casts are trusted, a value that
// does not fit is a contract violation; with SetTrustCasts(true) the
// result silently truncates.
func (x *Int) Int64() int64 {
	var v int64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		r := x.rep(d)
		if !trustCasts.Load() && !engine.FitsInt64(r) {
			panic(errors.Overflow(engine.Text(r, 10), "int64"))
		}
		v = engine.Int64(r)
		return nil
	})
	return v
}

// Uint64 returns x as a uint64, with the same checking as Int64.
func (x *Int) Uint64() uint64 {
	var v uint64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		r := x.rep(d)
		if !trustCasts.Load() && !engine.FitsUint64(r) {
			panic(errors.Overflow(engine.Text(r, 10), "uint64"))
		}
		v = engine.Uint64(r)
		return nil
	})
	return v
}

// Float64 returns the nearest double to x.
func (x *Int) Float64() float64 {
	var f float64
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		f = engine.Float64(x.rep(d))
		return nil
	})
	return f
}

// FitsInt64 reports whether x is representable as an int64.
func (x *Int) FitsInt64() bool {
	var ok bool
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		ok = engine.FitsInt64(x.rep(d))
		return nil
	})
	return ok
}

// FitsUint64 reports whether x is representable as a uint64.
func (x *Int) FitsUint64() bool {
	var ok bool
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		ok = engine.FitsUint64(x.rep(d))
		return nil
	})
	return ok
}

// Text formats x in the given base (2..62).
func (x *Int) Text(base int) string {
	var s string
	mustOn(x.rt, x.affinity, func(d *locale.Domain) error {
		s = engine.Text(x.rep(d), base)
		return nil
	})
	return s
}

// String formats x in base 10.
func (x *Int) String() string {
	return x.Text(10)
}
