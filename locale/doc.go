// Package locale simulates a distributed-memory system inside one
// process: a fixed set of locales, each an independent sequential
// execution domain with its own representation arena.
//
// # Execution Model
//
// "Execute this block on locale X" is the only cross-locale primitive,
// and it is synchronous:
//
//	rt, _ := locale.New(locale.Options{Locales: 4})
//	defer rt.Close()
//
//	err := rt.On(2, func(d *locale.Domain) error {
//	    // runs on locale 2's goroutine; d.Store() is locale 2's arena
//	    return nil
//	})
//
// The caller suspends until the remote block completes; there is no
// fire-and-forget variant, no timeout, and no retry. Blocks may
// themselves call On for a different locale, which is how the fetch
// protocol hops to a value's home and back. A block must not call On
// for the locale it is already executing on; the domain is sequential
// and the nested call would wait on itself.
//
// # Faults
//
// A locale that is missing or terminates while a call is outstanding is
// not a recoverable condition. The runtime logs the fault and ends the
// process, the single-process analogue of a memory partition
// disappearing under a running program.
package locale
