package engine

import (
	"sync"

	"go.uber.org/zap"

	mpruntime "github.com/wippyai/mp-runtime"
	"github.com/wippyai/mp-runtime/errors"
)

var (
	allocMu     sync.Mutex
	alloc       mpruntime.Allocator = heapAllocator{}
	allocLocked bool
)

// Setup installs the allocator all limb storage is routed through. It
// must be called before the first representation is initialized; once
// the engine has allocated, the hook is locked for the life of the
// process and Setup returns a contract error.
func Setup(a mpruntime.Allocator) error {
	allocMu.Lock()
	defer allocMu.Unlock()

	if allocLocked {
		return errors.Wrap(errors.PhaseInit, errors.KindContract, nil,
			"allocator hook already locked; Setup must precede the first allocation")
	}
	alloc = a
	allocLocked = true
	Logger().Info("engine allocator installed", zap.String("allocator", "host"))
	return nil
}

// ensureSetup locks in the current allocator (the heap default unless
// Setup ran first). Called at every allocation point.
func ensureSetup() {
	allocMu.Lock()
	allocLocked = true
	allocMu.Unlock()
}

func allocLimbs(n int) []mpruntime.Limb {
	if n == 0 {
		return nil
	}
	return alloc.AllocLimbs(n)
}

func freeLimbs(buf []mpruntime.Limb) {
	if buf != nil {
		alloc.FreeLimbs(buf)
	}
}

// heapAllocator is the default: plain garbage-collected slices.
type heapAllocator struct{}

func (heapAllocator) AllocLimbs(n int) []mpruntime.Limb {
	return make([]mpruntime.Limb, n)
}

func (heapAllocator) FreeLimbs(buf []mpruntime.Limb) {}
