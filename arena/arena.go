package arena

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("arena closed")

// Handle is an opaque reference to a representation slot.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Releaser is optionally implemented by stored values that need cleanup
// when their slot is dropped or the arena closes.
type Releaser interface {
	Release()
}

// Arena is the per-locale store of engine representations. Values
// reference slots by handle; the slot's validity bit makes a drop of an
// already-dropped handle a detectable no-op rather than a double free.
type Arena struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value  any
	typeID uint32
	valid  bool
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores a value and returns its handle.
func (a *Arena) Create(typeID uint32, value any) (Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return 0, ErrClosed
	}

	e := entry{
		typeID: typeID,
		value:  value,
		valid:  true,
	}

	if len(a.freeList) > 0 {
		handle := a.freeList[len(a.freeList)-1]
		a.freeList = a.freeList[:len(a.freeList)-1]
		a.entries[handle-1] = e
		return handle, nil
	}

	a.entries = append(a.entries, e)
	return Handle(len(a.entries)), nil
}

// Get retrieves a value by handle.
func (a *Arena) Get(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(a.entries) {
		return nil, false
	}

	e := a.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

// GetTyped retrieves a value only if it matches the expected type.
func (a *Arena) GetTyped(handle Handle, typeID uint32) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(a.entries) {
		return nil, false
	}

	e := a.entries[idx]
	if !e.valid || e.typeID != typeID {
		return nil, false
	}
	return e.value, true
}

// Drop removes a slot and returns (value, true) if it was still live.
// Dropping an invalid or already-dropped handle returns (nil, false).
// The stored value's Release method, if any, is invoked.
func (a *Arena) Drop(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	a.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(a.entries) {
		a.mu.Unlock()
		return nil, false
	}

	e := &a.entries[idx]
	if !e.valid {
		a.mu.Unlock()
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	a.freeList = append(a.freeList, handle)
	a.mu.Unlock()

	if r, ok := value.(Releaser); ok {
		r.Release()
	}
	return value, true
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	count := 0
	for _, e := range a.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live slots.
func (a *Arena) Each(fn func(Handle, uint32, any) bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for i, e := range a.entries {
		if e.valid {
			if !fn(Handle(i+1), e.typeID, e.value) {
				break
			}
		}
	}
}

// Close releases all live slots and rejects further creation.
func (a *Arena) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true

	var released []any
	for i := range a.entries {
		if a.entries[i].valid {
			released = append(released, a.entries[i].value)
			a.entries[i].valid = false
			a.entries[i].value = nil
		}
	}
	a.entries = nil
	a.freeList = nil
	a.mu.Unlock()

	for _, v := range released {
		if r, ok := v.(Releaser); ok {
			r.Release()
		}
	}
	return nil
}
