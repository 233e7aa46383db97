// Package mpint provides locale-aware arbitrary-precision integers on
// top of the engine and the locale runtime.
//
// An Int is a handle to a representation stored in the arena of one
// locale, fixed at construction. The handle travels freely; the storage
// does not. Operations execute on the receiver's locale: operands that
// live elsewhere are fetched by image, secondary outputs are shipped
// home the same way, and the receiver is always mutated in place so its
// identity, ownership, and affinity survive every operation.
//
// Ownership is explicit. Constructors return owning values; NewAlias
// returns a view that shares the owner's representation and must not
// outlive it. Destroy releases owned storage and is safe to call more
// than once.
//
// The API follows the engine's destination-first style turned into
// methods: z.Add(x, y) sets z = x + y and returns z for chaining.
// Division carries an explicit Rounding mode instead of three method
// families.
package mpint
