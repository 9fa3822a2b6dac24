package dom

import (
	"strings"
	"sync"
)

// Document owns a tree of elements and the viewport they resolve against.
type Document struct {
	mu        sync.RWMutex
	root      *Element
	body      *Element
	viewportW int
	viewportH int
}

// NewDocument creates a document with an html/body skeleton and the given
// viewport size in device-independent pixels.
func NewDocument(viewportWidth, viewportHeight int) *Document {
	d := &Document{
		viewportW: viewportWidth,
		viewportH: viewportHeight,
	}
	d.root = d.newElement("html")
	d.body = d.newElement("body")
	d.root.children = append(d.root.children, d.body)
	d.body.parent = d.root
	return d
}

// Body returns the document body element.
func (d *Document) Body() *Element {
	return d.body
}

// Root returns the document root element.
func (d *Document) Root() *Element {
	return d.root
}

// Viewport returns the document viewport size.
func (d *Document) Viewport() (width, height int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.viewportW, d.viewportH
}

// SetViewport updates the document viewport size.
func (d *Document) SetViewport(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewportW = width
	d.viewportH = height
}

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newElement(tag)
}

func (d *Document) newElement(tag string) *Element {
	return &Element{
		doc:        d,
		tag:        strings.ToLower(tag),
		attributes: make(map[string]string),
		style:      make(map[string]string),
	}
}

// GetElementByID finds the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return findByID(d.root, id)
}

// Query finds elements by a simple selector: "#id", ".class", or a tag name.
func (d *Document) Query(selector string) []*Element {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch {
	case strings.HasPrefix(selector, "#"):
		if elem := findByID(d.root, strings.TrimPrefix(selector, "#")); elem != nil {
			return []*Element{elem}
		}
		return nil
	case strings.HasPrefix(selector, "."):
		return findByClass(d.root, strings.TrimPrefix(selector, "."))
	default:
		return findByTag(d.root, strings.ToLower(selector))
	}
}

func findByID(elem *Element, id string) *Element {
	if elem.id == id && id != "" {
		return elem
	}
	for _, child := range elem.children {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

func findByClass(elem *Element, class string) []*Element {
	var result []*Element
	if elem.hasClass(class) {
		result = append(result, elem)
	}
	for _, child := range elem.children {
		result = append(result, findByClass(child, class)...)
	}
	return result
}

func findByTag(elem *Element, tag string) []*Element {
	var result []*Element
	if elem.tag == tag {
		result = append(result, elem)
	}
	for _, child := range elem.children {
		result = append(result, findByTag(child, tag)...)
	}
	return result
}
