// Package mpruntime provides a locale-aware arbitrary-precision integer
// runtime for Go.
//
// Values of the central mpint.Int type may physically live on any one of
// several independent memory partitions ("locales") while behaving, under
// copy, assignment, arithmetic, and destruction, like ordinary local
// values. The actual multi-precision algorithms are supplied by the engine
// package; everything above it is concerned with ownership, affinity, and
// the protocol for fetching a remote value's representation into a local
// temporary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	mp-runtime/        Root package with the engine Allocator interface
//	├── engine/        Arithmetic engine: opaque representations and the
//	│                  full in-place operation set
//	├── locale/        Simulated distributed-memory runtime: sequential
//	│                  execution domains with a blocking On primitive
//	├── arena/         Per-locale representation storage (handle tables)
//	├── mpint/         The locale-aware integer value type
//	├── mprand/        The locale-aware random generator state
//	├── errors/        Structured error types
//	└── config/        TOML runtime configuration
//
// # Quick Start
//
// Create a runtime with a few locales and compute across them:
//
//	rt, err := locale.New(locale.Options{Locales: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	a := mpint.NewInt(rt, 0, 27)   // lives on locale 0
//	b := mpint.NewInt(rt, 2, 4)    // lives on locale 2
//	defer a.Destroy()
//	defer b.Destroy()
//
//	sum := mpint.NewZero(rt, 1)    // lives on locale 1
//	defer sum.Destroy()
//	sum.Add(a, b)                  // executes on locale 1, fetching a and b
//	fmt.Println(sum)               // "31"
//
// # Ownership Model
//
// Every value is either the single owner of its representation or a
// non-owning alias of another value's representation. Owners release
// storage exactly once on Destroy; aliases never release and must not
// outlive their owner. A value's affinity is fixed at construction:
// operations needing its representation elsewhere fetch an owned copy
// rather than relocating the original.
package mpruntime
