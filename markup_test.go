package adsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkupInjectsSanitizedCreative(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	err = c.WriteMarkup(`<div id="creative"><p>Spring sale</p></div>`)
	require.NoError(t, err)

	frameDoc := c.VideoElement().Document()
	creative := frameDoc.GetElementByID("creative")
	require.NotNil(t, creative)
	assert.Equal(t, "body", creative.Parent().TagName())
}

func TestWriteMarkupStripsScripts(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	err = c.WriteMarkup(`<div id="wrapped"><script>window.pwned = true;</script><p onclick="x()">ok</p></div>`)
	require.NoError(t, err)

	frameDoc := c.VideoElement().Document()
	assert.Empty(t, frameDoc.Query("script"))

	// The creative content itself survives, handlers stripped.
	wrapped := frameDoc.GetElementByID("wrapped")
	require.NotNil(t, wrapped)
	paragraphs := frameDoc.Query("p")
	require.Len(t, paragraphs, 1)
	assert.False(t, paragraphs[0].HasAttribute("onclick"))

	// Nothing executed in the isolated context.
	assert.Nil(t, c.Context().Get("pwned"))
}

func TestWriteMarkupAllowsVideoCreatives(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	err = c.WriteMarkup(`<video controls poster="p.png"><source src="ad.mp4" type="video/mp4"></video>`)
	require.NoError(t, err)

	frameDoc := c.VideoElement().Document()
	// The surface's own video element plus the creative's.
	assert.Len(t, frameDoc.Query("video"), 2)
	require.Len(t, frameDoc.Query("source"), 1)
	assert.Equal(t, "ad.mp4", frameDoc.Query("source")[0].GetAttribute("src"))
}
