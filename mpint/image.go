package mpint

import (
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
)

// Export captures x's current value as a transportable engine image.
// This is the read half of the fetch protocol, exposed for sibling
// packages that compute on the engine directly. Release the image with
// engine.FreeImage.
func (x *Int) Export() engine.Image {
	return fetchImage(x)
}

// SetImage assigns a captured image to z, the write half of the fetch
// protocol. The image is copied; the caller still owns and frees it.
func (z *Int) SetImage(img engine.Image) {
	mustOn(z.rt, z.affinity, func(d *locale.Domain) error {
		var tmp engine.Rep
		engine.Import(&tmp, img)
		engine.Set(z.rep(d), &tmp)
		engine.Clear(&tmp)
		return nil
	})
}
