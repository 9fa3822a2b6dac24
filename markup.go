package adsurface

import "fmt"

// WriteMarkup injects a creative's HTML fragment into the frame body. The
// fragment is sanitized first: script elements and event handlers never
// pass, scripts go through AddScript. Requires readiness.
func (c *SecureContainer) WriteMarkup(markup string) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return &destroyedError{component: secureComponent}
	}
	frame := c.frame
	c.mu.Unlock()

	if frame == nil {
		return ErrNotReady
	}

	clean := c.opts.Sanitizer.Sanitize(markup)
	elems, err := frame.Document().ParseFragment(clean)
	if err != nil {
		return fmt.Errorf("write markup: %w", err)
	}

	body := frame.Document().Body()
	for _, elem := range elems {
		body.AppendChild(elem)
	}
	return nil
}
