package engine

import (
	"math/big"
	"math/bits"

	mpruntime "github.com/wippyai/mp-runtime"
	"github.com/wippyai/mp-runtime/errors"
)

// Rep is the opaque in-memory representation of an arbitrary-precision
// integer: sign plus limb words, backed by allocator-provided storage.
// A Rep is a resource: it is initialized once, mutated in place, and
// cleared exactly once. Never copy a Rep by value.
type Rep struct {
	z         big.Int
	allocated bool
}

// Image is the transportable byte image of a representation: limb words
// (least significant first) plus sign. It is the unit the cross-locale
// fetch protocol moves between memory partitions.
type Image struct {
	Limbs []mpruntime.Limb
	Neg   bool
}

func limbsFor(nbits uint) int {
	if nbits == 0 {
		return 1
	}
	return int((nbits + uint(bits.UintSize) - 1) / uint(bits.UintSize))
}

// Init initializes x to zero with minimal storage.
func Init(x *Rep) {
	ensureSetup()
	x.z.SetInt64(0)
	x.allocated = true
}

// Init2 initializes x to zero with room for at least nbits bits,
// amortizing growth for values whose final size is known up front.
func Init2(x *Rep, nbits uint) {
	ensureSetup()
	buf := allocLimbs(limbsFor(nbits))
	x.z.SetBits(buf[:0])
	x.allocated = true
}

// Realloc2 grows (or shrinks to fit) x's storage to hold nbits bits,
// preserving its value when it fits. Explicit: no operation reallocates
// implicitly on behalf of the caller.
func Realloc2(x *Rep, nbits uint) {
	n := limbsFor(nbits)
	old := x.z.Bits()
	if n < len(old) {
		n = len(old)
	}
	if n == cap(old) {
		return
	}
	neg := x.z.Sign() < 0
	buf := allocLimbs(n)
	copy(buf, old)
	x.z.SetBits(buf[:len(old)])
	if neg {
		x.z.Neg(&x.z)
	}
}

// Clear releases x's storage. Clearing a representation that is not
// currently allocated is a no-op, so a second Clear never double-frees.
func Clear(x *Rep) {
	if !x.allocated {
		return
	}
	x.allocated = false
	freeLimbs(x.z.Bits())
	x.z = big.Int{}
}

// Allocated reports whether x currently holds engine storage.
func Allocated(x *Rep) bool {
	return x.allocated
}

// Release clears the representation. It satisfies the arena's cleanup
// interface so dropped slots return their limbs.
func (x *Rep) Release() {
	Clear(x)
}

// Set copies src's value into dst. This is the engine's deep-copy entry
// point; dst keeps its own storage identity.
func Set(dst, src *Rep) {
	dst.z.Set(&src.z)
}

// SetInt64 sets dst to v.
func SetInt64(dst *Rep, v int64) {
	dst.z.SetInt64(v)
}

// SetUint64 sets dst to v.
func SetUint64(dst *Rep, v uint64) {
	dst.z.SetUint64(v)
}

// SetFloat64 sets dst to f truncated toward zero.
// f must be finite; the caller checks before the boundary.
func SetFloat64(dst *Rep, f float64) {
	var t big.Float
	t.SetFloat64(f)
	t.Int(&dst.z)
}

// SetString parses s in the given base into dst. Base 0 selects the base
// from the prefix of s; otherwise base must be in 2..62. On failure dst
// is left untouched and a format error is returned.
func SetString(dst *Rep, s string, base int) error {
	if base != 0 && (base < 2 || base > 62) {
		return errors.BadBase(base)
	}
	var t big.Int
	if _, ok := t.SetString(s, base); !ok {
		return errors.Format(s, base)
	}
	dst.z.Set(&t)
	return nil
}

// Text formats x in the given base (2..62).
func Text(x *Rep, base int) string {
	return x.z.Text(base)
}

// Int64 returns x as an int64. The result is undefined when x does not
// fit; callers gate on FitsInt64.
func Int64(x *Rep) int64 {
	return x.z.Int64()
}

// Uint64 returns x as a uint64. Undefined when x does not fit.
func Uint64(x *Rep) uint64 {
	return x.z.Uint64()
}

// Float64 returns the nearest double to x.
func Float64(x *Rep) float64 {
	var t big.Float
	f, _ := t.SetInt(&x.z).Float64()
	return f
}

// FitsInt64 reports whether x is representable as an int64.
func FitsInt64(x *Rep) bool {
	return x.z.IsInt64()
}

// FitsUint64 reports whether x is representable as a uint64.
func FitsUint64(x *Rep) bool {
	return x.z.IsUint64()
}

// Sign returns -1, 0, or +1 according to the sign of x.
func Sign(x *Rep) int {
	return x.z.Sign()
}

// BitLen returns the length of the absolute value of x in bits.
func BitLen(x *Rep) uint {
	return uint(x.z.BitLen())
}

// Cmp compares a and b, returning -1, 0, or +1.
func Cmp(a, b *Rep) int {
	return a.z.Cmp(&b.z)
}

// CmpAbs compares |a| and |b|.
func CmpAbs(a, b *Rep) int {
	return a.z.CmpAbs(&b.z)
}

// CmpInt64 compares a against the scalar v.
func CmpInt64(a *Rep, v int64) int {
	var t big.Int
	return a.z.Cmp(t.SetInt64(v))
}

// CmpUint64 compares a against the scalar v.
func CmpUint64(a *Rep, v uint64) int {
	var t big.Int
	return a.z.Cmp(t.SetUint64(v))
}

// Swap exchanges the values of a and b without copying limbs.
func Swap(a, b *Rep) {
	a.z, b.z = b.z, a.z
}

func exportBig(z *big.Int) Image {
	src := z.Bits()
	buf := allocLimbs(len(src))
	copy(buf, src)
	return Image{
		Limbs: buf[:len(src)],
		Neg:   z.Sign() < 0,
	}
}

func importBig(z *big.Int, img Image) {
	buf := allocLimbs(len(img.Limbs))
	copy(buf, img.Limbs)
	z.SetBits(buf[:len(img.Limbs)])
	if img.Neg {
		z.Neg(z)
	}
}

// Export captures x's current state as a transportable image. The image
// owns its limbs; release them with FreeImage once reconstructed.
func Export(x *Rep) Image {
	return exportBig(&x.z)
}

// Import reconstructs dst from a captured image, backed by freshly
// allocated storage sized to the image's limb count.
func Import(dst *Rep, img Image) {
	ensureSetup()
	importBig(&dst.z, img)
	dst.allocated = true
}

// FreeImage returns an image's limb buffer to the allocator.
func FreeImage(img Image) {
	freeLimbs(img.Limbs)
}
