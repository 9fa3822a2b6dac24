package adsurface

import (
	"context"
	"fmt"

	"github.com/adkit-io/adsurface/dom"
)

// newScriptElement builds the script element shape shared by both variants:
// deferred, explicitly non-async, carrying the caller's extra attributes.
func newScriptElement(doc *dom.Document, src string, attrs map[string]string) *dom.Element {
	script := doc.CreateElement("script")
	script.SetAttribute("src", src)
	script.SetAttribute("defer", "")
	script.SetAttribute("async", "false")
	for name, value := range attrs {
		script.SetAttribute(name, value)
	}
	return script
}

// AddScript injects an ad-vendor script into the isolated frame and blocks
// until it has loaded and executed there, or failed. The destroy guard is
// checked before any waiting. Each call creates a fresh script element.
func (c *SecureContainer) AddScript(ctx context.Context, src string, attrs map[string]string) (*dom.Element, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}

	// Script injection needs the completed frame.
	select {
	case <-c.readyCh:
	case <-c.destroyCh:
		return nil, &destroyedError{component: secureComponent}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return nil, &destroyedError{component: secureComponent}
	}
	frame := c.frame
	c.mu.Unlock()

	script := newScriptElement(frame.Document(), src, attrs)
	frame.Document().Body().AppendChild(script)

	source, err := c.opts.Fetcher.Fetch(ctx, src)
	if err != nil {
		c.metrics.ScriptLoads.WithLabelValues("fetch_error").Inc()
		script.Dispatch(dom.Event{Type: dom.EventError, Err: err})
		return nil, fmt.Errorf("load script %s: %w", src, err)
	}

	if err := frame.Run(src, source); err != nil {
		c.metrics.ScriptLoads.WithLabelValues("exec_error").Inc()
		script.Dispatch(dom.Event{Type: dom.EventError, Err: err})
		return nil, fmt.Errorf("load script %s: %w", src, err)
	}

	c.metrics.ScriptLoads.WithLabelValues("ok").Inc()
	c.logger.Debug("script loaded: " + src)
	script.Dispatch(dom.Event{Type: dom.EventLoad})
	return script, nil
}

// AddScript for the base variant attaches and loads the script element in
// the host document. Execution is the host page's concern; the base variant
// has no runtime of its own.
func (c *Container) AddScript(ctx context.Context, src string, attrs map[string]string) (*dom.Element, error) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return nil, &destroyedError{component: baseComponent}
	}
	element := c.element
	c.mu.Unlock()

	script := newScriptElement(element.Document(), src, attrs)
	element.AppendChild(script)

	if _, err := c.opts.Fetcher.Fetch(ctx, src); err != nil {
		c.metrics.ScriptLoads.WithLabelValues("fetch_error").Inc()
		script.Dispatch(dom.Event{Type: dom.EventError, Err: err})
		return nil, fmt.Errorf("load script %s: %w", src, err)
	}

	c.metrics.ScriptLoads.WithLabelValues("ok").Inc()
	script.Dispatch(dom.Event{Type: dom.EventLoad})
	return script, nil
}
