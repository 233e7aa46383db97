// Package engine is the arbitrary-precision arithmetic collaborator.
//
// The engine exposes GMP-flavored entry points over an opaque Rep: every
// operation mutates a destination representation in place and performs no
// locale reasoning whatsoever. Callers above this package (mpint, mprand)
// are responsible for placement, ownership, and transport; the engine is
// responsible only for being numerically correct.
//
// # Calling Convention
//
// Entry points take the destination first, then 1-2 source
// representations or native scalars:
//
//	var a, b, sum engine.Rep
//	engine.Init(&a)
//	engine.Init(&b)
//	engine.Init(&sum)
//	engine.SetInt64(&a, 27)
//	engine.SetInt64(&b, 4)
//	engine.Add(&sum, &a, &b)
//
// Destination and sources may alias except where noted (the combined
// quotient/remainder entry points require q and r to be distinct).
//
// # Hard Faults
//
// Division by zero and modular inversion of a non-invertible element
// panic, mirroring the native engine's hard fault on the same inputs.
// These are caller contract violations, not recoverable errors.
//
// # Allocator Hook
//
// All limb storage is obtained through a process-wide allocator installed
// with Setup before the first representation is initialized. This is a
// precondition of the whole subsystem: the hook cannot be replaced once
// the engine has allocated.
package engine
