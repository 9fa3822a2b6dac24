package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

// RenderHTML serializes the whole document tree.
func (d *Document) RenderHTML() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>")
	d.root.render(&sb)
	return sb.String()
}

func (e *Element) render(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.tag)

	if e.id != "" {
		writeAttr(sb, "id", e.id)
	}
	if len(e.classes) > 0 {
		writeAttr(sb, "class", strings.Join(e.classes, " "))
	}
	if len(e.style) > 0 {
		writeAttr(sb, "style", e.inlineStyle())
	}

	names := make([]string, 0, len(e.attributes))
	for name := range e.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeAttr(sb, name, e.attributes[name])
	}

	sb.WriteByte('>')
	sb.WriteString(html.EscapeString(e.text))
	for _, child := range e.children {
		child.render(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

func (e *Element) inlineStyle() string {
	props := make([]string, 0, len(e.style))
	for prop := range e.style {
		props = append(props, prop)
	}
	sort.Strings(props)
	decls := make([]string, 0, len(props))
	for _, prop := range props {
		decls = append(decls, prop+": "+e.style[prop])
	}
	return strings.Join(decls, "; ")
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteByte('"')
}
