// Package arena provides per-locale storage of engine representations.
//
// Each locale's execution domain owns one arena. A value living on that
// locale references its representation through an opaque handle rather
// than a raw pointer, so release is idempotent at the slot level: the
// first Drop invalidates the slot, a second Drop of the same handle is a
// detectable no-op.
//
//	a := arena.New()
//	h, _ := a.Create(typeID, rep)
//
//	rep, ok := a.Get(h)       // live
//	a.Drop(h)                 // releases
//	_, ok = a.Get(h)          // !ok
//	_, ok = a.Drop(h)         // !ok, no double free
//
// Slots are type-tagged; GetTyped guards against a random-state handle
// being dereferenced as an integer representation and vice versa.
package arena
