package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseFragment parses an HTML fragment into detached elements owned by this
// document. Text nodes directly under an element become its text content.
func (d *Document) ParseFragment(fragment string) ([]*Element, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	var elems []*Element
	gq.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			elems = append(elems, d.fromNode(node))
		}
	})
	return elems, nil
}

func (d *Document) fromNode(node *html.Node) *Element {
	d.mu.Lock()
	elem := d.newElement(node.Data)
	d.mu.Unlock()

	for _, attr := range node.Attr {
		switch attr.Key {
		case "id":
			elem.SetID(attr.Val)
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				elem.AddClass(class)
			}
		case "style":
			applyInlineStyle(elem, attr.Val)
		default:
			elem.SetAttribute(attr.Key, attr.Val)
		}
	}

	var text strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			elem.AppendChild(d.fromNode(child))
		case html.TextNode:
			text.WriteString(child.Data)
		}
	}
	if t := strings.TrimSpace(text.String()); t != "" {
		elem.SetText(t)
	}
	return elem
}

func applyInlineStyle(elem *Element, style string) {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop != "" && value != "" {
			elem.SetStyle(prop, value)
		}
	}
}
