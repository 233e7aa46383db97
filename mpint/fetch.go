package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
)

// fetchImage hops to src's locale, captures its byte image, and returns
// with the image in hand. This is the remote read half of the fetch
// protocol; the caller reconstructs and frees the image locally.
func fetchImage(src *Int) engine.Image {
	var img engine.Image
	mustOn(src.rt, src.affinity, func(d *locale.Domain) error {
		img = engine.Export(src.rep(d))
		return nil
	})
	return img
}

// operand resolves x as a representation usable on domain d (running on
// locale `at`). A same-locale operand is used in place; a remote one is
// fetched into a temporary. The returned release function clears the
// temporary and is a no-op for the in-place case.
func operand(d *locale.Domain, at locale.ID, x *Int) (*engine.Rep, func()) {
	if x.affinity == at {
		return x.rep(d), func() {}
	}
	img := fetchImage(x)
	tmp := new(engine.Rep)
	engine.Import(tmp, img)
	engine.FreeImage(img)
	return tmp, func() { engine.Clear(tmp) }
}

// output resolves x as a destination for a computation running on
// locale `at`. A same-locale destination is written in place. A remote
// one gets a local scratch representation; the returned commit function
// ships the scratch value home and writes it into x's existing storage,
// preserving x's identity, ownership, and affinity.
func output(d *locale.Domain, at locale.ID, x *Int) (*engine.Rep, func()) {
	if x.affinity == at {
		return x.rep(d), func() {}
	}
	scratch := new(engine.Rep)
	engine.Init(scratch)
	commit := func() {
		img := engine.Export(scratch)
		engine.Clear(scratch)
		mustOn(x.rt, x.affinity, func(home *locale.Domain) error {
			var tmp engine.Rep
			engine.Import(&tmp, img)
			engine.Set(x.rep(home), &tmp)
			engine.Clear(&tmp)
			return nil
		})
		engine.FreeImage(img)
	}
	return scratch, commit
}
