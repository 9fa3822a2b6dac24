package dom

import (
	"math"
	"strconv"
	"strings"
)

// ContentBox resolves the element's current content width and height in
// integral device-independent pixels. Pixel lengths resolve directly,
// percentages resolve against the parent's box, and elements without an
// inline size inherit the parent's resolved box. The document root resolves
// against the viewport.
func (e *Element) ContentBox() (width, height int) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.resolveAxis("width"), e.resolveAxis("height")
}

func (e *Element) resolveAxis(axis string) int {
	if px, ok := parseLength(e.style[axis]); ok {
		return px
	}
	if pct, ok := parsePercent(e.style[axis]); ok {
		return int(math.Round(float64(e.parentAxis(axis)) * pct / 100))
	}
	return e.parentAxis(axis)
}

func (e *Element) parentAxis(axis string) int {
	if e.parent != nil {
		return e.parent.resolveAxis(axis)
	}
	if axis == "width" {
		return e.doc.viewportW
	}
	return e.doc.viewportH
}

// parseLength parses a "<n>px" length into rounded integral pixels.
func parseLength(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "px") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f)), true
}

// parsePercent parses a "<n>%" length into its numeric percentage.
func parsePercent(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
