package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentBoxResolution(t *testing.T) {
	doc := NewDocument(1280, 720)

	slot := doc.CreateElement("div")
	slot.SetStyle("width", "640px")
	slot.SetStyle("height", "360px")
	doc.Body().AppendChild(slot)

	container := doc.CreateElement("div")
	container.SetStyle("width", "100%")
	container.SetStyle("height", "100%")
	slot.AppendChild(container)

	tests := []struct {
		name       string
		el         *Element
		wantWidth  int
		wantHeight int
	}{
		{"pixel lengths", slot, 640, 360},
		{"full-bleed child", container, 640, 360},
		{"unstyled body inherits viewport", doc.Body(), 1280, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.el.ContentBox()
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}

func TestContentBoxPercentages(t *testing.T) {
	doc := NewDocument(1000, 500)

	outer := doc.CreateElement("div")
	outer.SetStyle("width", "50%") // 500
	outer.SetStyle("height", "50%")
	doc.Body().AppendChild(outer)

	inner := doc.CreateElement("div")
	inner.SetStyle("width", "25%") // 125
	outer.AppendChild(inner)

	w, h := outer.ContentBox()
	assert.Equal(t, 500, w)
	assert.Equal(t, 250, h)

	w, h = inner.ContentBox()
	assert.Equal(t, 125, w)
	assert.Equal(t, 250, h) // unstyled height inherits

	// Measurement is live, not cached
	outer.SetStyle("width", "200px")
	w, _ = inner.ContentBox()
	assert.Equal(t, 50, w)
}

func TestContentBoxRounding(t *testing.T) {
	doc := NewDocument(100, 100)
	el := doc.CreateElement("div")
	el.SetStyle("width", "10.6px")
	el.SetStyle("height", "10.4px")
	doc.Body().AppendChild(el)

	w, h := el.ContentBox()
	assert.Equal(t, 11, w)
	assert.Equal(t, 10, h)
}

func TestDetachedElementResolvesViewport(t *testing.T) {
	doc := NewDocument(300, 200)
	el := doc.CreateElement("div")

	w, h := el.ContentBox()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}
