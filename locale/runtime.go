package locale

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/mp-runtime/errors"
)

// Options configures a locale runtime.
type Options struct {
	// Locales is the number of independent memory partitions to
	// simulate. Zero means one.
	Locales int
}

// Runtime simulates a distributed-memory system as a fixed set of
// sequential execution domains. On is the only way in: a synchronous,
// blocking call that suspends the invoking control flow until the
// remote block completes.
//
// There is no cancellation and no partial result: a locale that
// terminates while a call is outstanding is a hard fault that ends the
// process, matching the behavior of real partitioned memory going away.
type Runtime struct {
	domains []*Domain
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// New starts a runtime with the configured number of locales.
func New(opts Options) (*Runtime, error) {
	n := opts.Locales
	if n == 0 {
		n = 1
	}
	if n < 0 {
		return nil, errors.New(errors.PhaseInit, errors.KindOutOfRange).
			Detail("locale count %d", n).
			Build()
	}

	rt := &Runtime{
		domains: make([]*Domain, n),
	}
	for i := range rt.domains {
		d := newDomain(ID(i))
		rt.domains[i] = d
		rt.wg.Add(1)
		go func() {
			defer rt.wg.Done()
			d.loop()
		}()
	}

	Logger().Info("locale runtime started", zap.Int("locales", n))
	return rt, nil
}

// NumLocales returns the number of locales.
func (rt *Runtime) NumLocales() int {
	return len(rt.domains)
}

// Closed reports whether the runtime has been shut down.
func (rt *Runtime) Closed() bool {
	return rt.closed.Load()
}

// On executes fn on the named locale and blocks until it returns. The
// error is fn's own error; a missing or terminated locale is not an
// error but a fault that aborts the process.
func (rt *Runtime) On(id ID, fn func(*Domain) error) error {
	if int(id) < 0 || int(id) >= len(rt.domains) {
		fault(errors.Fault(int32(id), "no such locale"))
		return nil
	}
	d := rt.domains[id]

	req := request{fn: fn, done: make(chan error, 1)}
	select {
	case d.reqs <- req:
	case <-d.quit:
		fault(errors.Fault(int32(id), "terminated before call"))
		return nil
	}

	select {
	case err := <-req.done:
		return err
	case <-d.quit:
		fault(errors.Fault(int32(id), "terminated during call"))
		return nil
	}
}

// Close terminates every domain and waits for their goroutines. Values
// still stored on any locale are released with the locale's arena.
// Callers must not have operations in flight.
func (rt *Runtime) Close() error {
	if !rt.closed.CompareAndSwap(false, true) {
		return nil
	}
	for _, d := range rt.domains {
		close(d.quit)
	}
	rt.wg.Wait()
	Logger().Info("locale runtime stopped")
	return nil
}

// fault reports an unrecoverable locale failure and ends the process.
// Overridable for the runtime's own tests only.
var fault = func(err *errors.Error) {
	Logger().Fatal("locale fault", zap.Error(err))
}
