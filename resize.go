package adsurface

import "fmt"

// Resize reads the host element's current content box and applies it to the
// embedded frame as pixel width/height attributes. Safe to call any number
// of times; every call reflects the live measurement.
func (c *SecureContainer) Resize() error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return &destroyedError{component: secureComponent}
	}
	element := c.element
	frameElement := c.frameElement
	frame := c.frame
	c.mu.Unlock()

	width, height := element.ContentBox()
	frameElement.SetAttribute("width", fmt.Sprintf("%dpx", width))
	frameElement.SetAttribute("height", fmt.Sprintf("%dpx", height))

	// Before setup completes there is no frame viewport to mirror yet.
	if frame != nil {
		frame.SetViewport(width, height)
	}

	c.metrics.Resizes.Inc()
	return nil
}

// Resize is a no-op for the base variant: the video element is styled
// full-bleed in the host document and tracks its parent without attribute
// synchronization. The destroy guard still applies.
func (c *Container) Resize() error {
	return c.guard()
}
