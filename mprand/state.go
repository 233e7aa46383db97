package mprand

import (
	"github.com/wippyai/mp-runtime/arena"
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/errors"
	"github.com/wippyai/mp-runtime/locale"
	"github.com/wippyai/mp-runtime/mpint"
)

// State is a locale-aware random generator. Like an integer value it
// has a fixed affinity chosen at construction: the generator state
// lives in that locale's arena and every draw advances it there, so a
// stream stays sequential no matter where its consumers run.
type State struct {
	rt       *locale.Runtime
	handle   arena.Handle
	affinity locale.ID
	owned    bool
}

func mustOn(rt *locale.Runtime, id locale.ID, fn func(*locale.Domain) error) {
	if err := rt.On(id, fn); err != nil {
		panic(err)
	}
}

func (s *State) state(d *locale.Domain) *engine.RandState {
	v, ok := d.Store().GetTyped(s.handle, arena.TypeRandState)
	if !ok {
		panic(errors.Contract("generator used after destroy on locale %d", s.affinity))
	}
	return v.(*engine.RandState)
}

func alloc(rt *locale.Runtime, at locale.ID, init func(*engine.RandState) error) (*State, error) {
	s := &State{rt: rt, affinity: at, owned: true}
	var initErr error
	mustOn(rt, at, func(d *locale.Domain) error {
		es := new(engine.RandState)
		if initErr = init(es); initErr != nil {
			return nil
		}
		h, err := d.Store().Create(arena.TypeRandState, es)
		if err != nil {
			return err
		}
		s.handle = h
		return nil
	})
	if initErr != nil {
		return nil, initErr
	}
	return s, nil
}

// New constructs a generator with the default algorithm on the given
// locale.
func New(rt *locale.Runtime, at locale.ID) *State {
	s, _ := alloc(rt, at, func(es *engine.RandState) error {
		engine.RandInitDefault(es)
		return nil
	})
	return s
}

// NewPCG constructs a generator using the alternate PCG algorithm.
func NewPCG(rt *locale.Runtime, at locale.ID) *State {
	s, _ := alloc(rt, at, func(es *engine.RandState) error {
		engine.RandInitPCG(es)
		return nil
	})
	return s
}

// NewLC2Exp constructs a linear congruential generator with multiplier
// a, additive constant c, and modulus 2^m2exp.
func NewLC2Exp(rt *locale.Runtime, at locale.ID, a *mpint.Int, c uint64, m2exp uint) *State {
	img := a.Export()
	s, _ := alloc(rt, at, func(es *engine.RandState) error {
		var mult engine.Rep
		engine.Import(&mult, img)
		engine.RandInitLC2Exp(es, &mult, c, m2exp)
		engine.Clear(&mult)
		return nil
	})
	engine.FreeImage(img)
	return s
}

// NewLC2ExpSize constructs a linear congruential generator with a
// modulus of at least size bits, using built-in parameters. Sizes above
// 128 are unsupported.
func NewLC2ExpSize(rt *locale.Runtime, at locale.ID, size uint) (*State, error) {
	return alloc(rt, at, func(es *engine.RandState) error {
		return engine.RandInitLC2ExpSize(es, size)
	})
}

// NewCopy constructs a generator on the given locale whose stream
// continues from src's current state. The two generators advance
// independently afterwards.
func NewCopy(rt *locale.Runtime, at locale.ID, src *State) *State {
	var img engine.RandImage
	mustOn(src.rt, src.affinity, func(d *locale.Domain) error {
		img = engine.RandExport(src.state(d))
		return nil
	})
	s, _ := alloc(rt, at, func(es *engine.RandState) error {
		engine.RandImport(es, img)
		return nil
	})
	engine.FreeRandImage(img)
	return s
}

// Destroy releases the generator's state. Safe to call more than once.
func (s *State) Destroy() {
	if !s.owned {
		s.handle = 0
		return
	}
	s.owned = false
	if s.rt.Closed() {
		s.handle = 0
		return
	}
	h := s.handle
	s.handle = 0
	mustOn(s.rt, s.affinity, func(d *locale.Domain) error {
		d.Store().Drop(h)
		return nil
	})
}

// Affinity returns the locale hosting the generator state.
func (s *State) Affinity() locale.ID {
	return s.affinity
}

// Seed reseeds the generator from an arbitrary-precision seed.
func (s *State) Seed(seed *mpint.Int) {
	img := seed.Export()
	mustOn(s.rt, s.affinity, func(d *locale.Domain) error {
		var r engine.Rep
		engine.Import(&r, img)
		engine.RandSeed(s.state(d), &r)
		engine.Clear(&r)
		return nil
	})
	engine.FreeImage(img)
}

// SeedUint64 reseeds the generator from a scalar seed.
func (s *State) SeedUint64(seed uint64) {
	mustOn(s.rt, s.affinity, func(d *locale.Domain) error {
		engine.RandSeedUint64(s.state(d), seed)
		return nil
	})
}

// Urandomb sets dst to a uniformly distributed value in [0, 2^nbits).
// The draw advances the stream on the generator's locale; the result is
// then shipped to dst wherever it lives.
func (s *State) Urandomb(dst *mpint.Int, nbits uint) {
	var img engine.Image
	mustOn(s.rt, s.affinity, func(d *locale.Domain) error {
		var r engine.Rep
		engine.Init(&r)
		engine.RandUrandomb(&r, s.state(d), nbits)
		img = engine.Export(&r)
		engine.Clear(&r)
		return nil
	})
	dst.SetImage(img)
	engine.FreeImage(img)
}

// Urandomm sets dst to a uniformly distributed value in [0, bound);
// bound must be positive.
func (s *State) Urandomm(dst *mpint.Int, bound *mpint.Int) {
	bimg := bound.Export()
	var img engine.Image
	mustOn(s.rt, s.affinity, func(d *locale.Domain) error {
		var b, r engine.Rep
		engine.Import(&b, bimg)
		engine.Init(&r)
		engine.RandUrandomm(&r, s.state(d), &b)
		img = engine.Export(&r)
		engine.Clear(&r)
		engine.Clear(&b)
		return nil
	})
	engine.FreeImage(bimg)
	dst.SetImage(img)
	engine.FreeImage(img)
}
