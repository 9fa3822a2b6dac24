package dom

import (
	"slices"
	"strings"
)

// Element is one node in a document tree.
type Element struct {
	doc        *Document
	tag        string
	id         string
	classes    []string
	attributes map[string]string
	style      map[string]string
	text       string
	children   []*Element
	parent     *Element
	listeners  map[string][]Listener
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return e.tag
}

// ID returns the element id.
func (e *Element) ID() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.id
}

// SetID sets the element id.
func (e *Element) SetID(id string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.id = id
}

// AddClass appends a class if not already present.
func (e *Element) AddClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if !slices.Contains(e.classes, class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes a class if present.
func (e *Element) RemoveClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(class string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.hasClass(class)
}

func (e *Element) hasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// ClassName returns the space-joined class list.
func (e *Element) ClassName() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return strings.Join(e.classes, " ")
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.attributes[name] = value
}

// GetAttribute returns an attribute value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.attributes[name]
}

// HasAttribute reports whether the attribute is set.
func (e *Element) HasAttribute(name string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	_, ok := e.attributes[name]
	return ok
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	delete(e.attributes, name)
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(property, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.style[property] = value
}

// Style returns an inline style property value, or "" when unset.
func (e *Element) Style(property string) string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.style[property]
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.text = text
}

// Text returns the element's text content.
func (e *Element) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.text
}

// AppendChild attaches a child, detaching it from any previous parent.
// The child must belong to the same document.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.doc != e.doc {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	child.detach()
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches the element from its parent. A detached element keeps its
// subtree and can be re-attached.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.detach()
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children[:0]
	for _, child := range e.parent.children {
		if child != e {
			siblings = append(siblings, child)
		}
	}
	e.parent.children = siblings
	e.parent = nil
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.children)
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return len(e.children)
}
