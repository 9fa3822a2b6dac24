package adsurface

import (
	"context"

	"github.com/dop251/goja"

	"github.com/adkit-io/adsurface/dom"
)

// CSS classes carried by every host-visible element. The secure variant
// carries both, so generic container styling still applies to it.
const (
	ClassContainer       = "ad-container"
	ClassContainerSecure = "ad-container-secure"
)

const fullBleed = "100%"

// Surface is the contract shared by both container variants.
type Surface interface {
	// Ready blocks until asynchronous setup has completed. It is idempotent
	// and may be awaited any number of times, including after completion.
	Ready(ctx context.Context) error

	// AddScript injects a script element into the surface and blocks until
	// its load completes or fails. Every call creates a new element; there
	// is no dedupe or caching by URL.
	AddScript(ctx context.Context, src string, attrs map[string]string) (*dom.Element, error)

	// Resize synchronizes the rendered frame size with the host element's
	// current content box.
	Resize() error

	// Destroy tears the surface down. Terminal; there is no resurrection.
	Destroy()

	// Destroyed reports whether Destroy has been called.
	Destroyed() bool

	// Element returns the host-visible element, or nil after Destroy.
	Element() *dom.Element

	// VideoElement returns the video element, or nil before readiness and
	// after Destroy.
	VideoElement() *dom.Element

	// Context returns the isolated frame's global object. Nil for the base
	// variant, nil before readiness, and nil after Destroy.
	Context() *goja.Object
}

var (
	_ Surface = (*Container)(nil)
	_ Surface = (*SecureContainer)(nil)
)
