package locale

import (
	"fmt"

	"github.com/wippyai/mp-runtime/arena"
	"github.com/wippyai/mp-runtime/errors"
)

// ID names a locale. Locales are numbered 0..N-1; a value's affinity is
// the ID of the locale hosting its storage.
type ID int32

// request is a unit of work to be executed on a domain's goroutine.
type request struct {
	fn   func(*Domain) error
	done chan error
}

// Domain is one locale: an independent sequential execution context
// owning that locale's representation arena. All access to storage with
// affinity to this locale happens on the domain goroutine; callers reach
// it through Runtime.On, never directly.
type Domain struct {
	id    ID
	store *arena.Arena
	reqs  chan request
	quit  chan struct{}
}

func newDomain(id ID) *Domain {
	return &Domain{
		id:    id,
		store: arena.New(),
		reqs:  make(chan request, 16),
		quit:  make(chan struct{}),
	}
}

// ID returns the domain's locale identifier.
func (d *Domain) ID() ID {
	return d.id
}

// Store returns the domain's representation arena.
func (d *Domain) Store() *arena.Arena {
	return d.store
}

// loop processes requests sequentially on a dedicated goroutine.
func (d *Domain) loop() {
	for {
		select {
		case req := <-d.reqs:
			req.done <- d.execute(req.fn)
		case <-d.quit:
			d.store.Close()
			return
		}
	}
}

// execute runs a block on the domain, recovering panics into errors.
func (d *Domain) execute(fn func(*Domain) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.PhaseRuntime, errors.KindContract,
				fmt.Errorf("%v", r), fmt.Sprintf("panic on locale %d", d.id))
		}
	}()
	return fn(d)
}
