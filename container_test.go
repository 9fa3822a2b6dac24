package adsurface

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresPlaceholder(t *testing.T) {
	c, err := New(nil, Options{})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoPlaceholder)
}

func TestBaseRendersInHostDocument(t *testing.T) {
	hostDoc, slot := newSlot(t, 640, 360)

	c, err := New(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	el := c.Element()
	require.NotNil(t, el)
	assert.Same(t, slot, el.Parent())
	assert.True(t, el.HasClass(ClassContainer))
	assert.False(t, el.HasClass(ClassContainerSecure))
	assert.Equal(t, "100%", el.Style("width"))
	assert.Equal(t, "100%", el.Style("height"))

	// No isolation: the video element lives in the host document.
	video := c.VideoElement()
	require.NotNil(t, video)
	assert.Equal(t, "video", video.TagName())
	assert.Same(t, hostDoc, video.Document())
	assert.Same(t, el, video.Parent())
	assert.Nil(t, c.Context())
}

func TestBaseUsesSuppliedVideoElement(t *testing.T) {
	hostDoc, slot := newSlot(t, 640, 360)
	supplied := hostDoc.CreateElement("video")

	c, err := New(slot, Options{VideoElement: supplied})
	require.NoError(t, err)
	defer c.Destroy()

	assert.Same(t, supplied, c.VideoElement())
	assert.Equal(t, "100%", supplied.Style("width"))
	assert.Equal(t, "100%", supplied.Style("height"))
}

func TestBaseReadyIsImmediate(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := New(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	for i := 0; i < 2; i++ {
		require.NoError(t, c.Ready(context.Background()))
	}
}

func TestBaseDestroyAndGuards(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := New(slot, Options{})
	require.NoError(t, err)

	c.Destroy()
	assert.True(t, c.Destroyed())
	assert.Nil(t, c.Element())
	assert.Nil(t, c.VideoElement())
	assert.Equal(t, 0, slot.ChildCount())

	const wantMsg = "Container has been destroyed"

	err = c.Resize()
	require.Error(t, err)
	assert.Equal(t, wantMsg, err.Error())
	assert.ErrorIs(t, err, ErrDestroyed)

	_, err = c.AddScript(context.Background(), "http://x/y.js", nil)
	require.Error(t, err)
	assert.Equal(t, wantMsg, err.Error())

	err = c.Ready(context.Background())
	require.Error(t, err)
	assert.Equal(t, wantMsg, err.Error())

	c.Destroy() // idempotent
	assert.True(t, c.Destroyed())
}

func TestBaseResizeIsGuardedNoOp(t *testing.T) {
	_, slot := newSlot(t, 640, 360)

	c, err := New(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	require.NoError(t, c.Resize())
}
