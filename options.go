package adsurface

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/adkit-io/adsurface/dom"
	"github.com/adkit-io/adsurface/internal/fetch"
)

// ResizeObserverFunc is the injected resize-observation capability: it
// arranges for callback to run whenever the element's box size changes.
type ResizeObserverFunc func(el *dom.Element, callback func())

// ScriptFetcher retrieves script source by URL.
type ScriptFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options configures a surface. The zero value is valid: a nop logger, the
// HTTP fetcher, dynamic resize enabled, and resize observation via the host
// element's resize event.
type Options struct {
	// Logger receives the advisory warning and debug output. Nop when nil.
	Logger *zap.Logger

	// VideoElement is rendered by the base variant. The secure variant
	// ignores it for rendering and reports one advisory warning.
	VideoElement *dom.Element

	// DisableResize turns off the automatic resize-on-size-change
	// subscription. Dynamic resize is on by default.
	DisableResize bool

	// ObserveResize is the resize-observation capability. Defaults to a
	// listener on the host element's resize event.
	ObserveResize ResizeObserverFunc

	// Fetcher retrieves script sources for AddScript. Defaults to the
	// retrying HTTP fetcher.
	Fetcher ScriptFetcher

	// Sanitizer filters markup passed to WriteMarkup. Defaults to a UGC
	// policy extended for video creatives.
	Sanitizer *bluemonday.Policy
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.ObserveResize == nil {
		o.ObserveResize = observeResizeEvents
	}
	if o.Fetcher == nil {
		o.Fetcher = fetch.New(0)
	}
	if o.Sanitizer == nil {
		o.Sanitizer = creativePolicy()
	}
	return o
}

// observeResizeEvents is the default resize-observation capability.
func observeResizeEvents(el *dom.Element, callback func()) {
	el.AddEventListener(dom.EventResize, func(dom.Event) {
		callback()
	})
}

// creativePolicy permits common creative markup plus video playback
// elements. Script elements never pass; scripts go through AddScript.
func creativePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id", "class").Globally()
	p.AllowElements("video", "source")
	p.AllowAttrs("src", "poster", "controls", "autoplay", "muted", "loop", "playsinline").OnElements("video")
	p.AllowAttrs("src", "type").OnElements("source")
	p.AllowAttrs("width", "height").OnElements("video", "img", "div")
	return p
}
