// Package mprand provides locale-aware random number generation for
// arbitrary-precision integers.
//
// A State owns an opaque generator resource pinned to one locale, the
// same affinity model package mpint uses for values. Draws always
// advance the state on its home locale, so a single stream observed
// from many locales stays a single stream; results are shipped to the
// destination value through the engine's image protocol.
//
// Three algorithms are available: the ChaCha8-based default, a PCG
// alternate, and a classic linear congruential generator modulo a
// power of two for reproducing fixed historic streams.
package mprand
