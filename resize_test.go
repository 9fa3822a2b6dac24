package adsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adkit-io/adsurface/dom"
)

func frameElement(t *testing.T, c *SecureContainer) *dom.Element {
	t.Helper()
	el := c.Element()
	require.NotNil(t, el)
	children := el.Children()
	require.Len(t, children, 1)
	require.Equal(t, "iframe", children[0].TagName())
	return children[0]
}

func TestSecureInitialResize(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	// One automatic size pass at readiness mirrors the host content box
	// onto the frame's pixel attributes.
	frame := frameElement(t, c)
	assert.Equal(t, "300px", frame.GetAttribute("width"))
	assert.Equal(t, "250px", frame.GetAttribute("height"))
}

func TestSecureResizeReflectsLiveMeasurement(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)
	frame := frameElement(t, c)

	slot.SetStyle("width", "728px")
	slot.SetStyle("height", "90px")
	require.NoError(t, c.Resize())

	assert.Equal(t, "728px", frame.GetAttribute("width"))
	assert.Equal(t, "90px", frame.GetAttribute("height"))

	// Repeated calls always re-measure.
	slot.SetStyle("width", "160px")
	require.NoError(t, c.Resize())
	assert.Equal(t, "160px", frame.GetAttribute("width"))
}

func TestSecureDynamicResizeSubscription(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	obs := &recordingObserver{}
	c, err := NewSecure(slot, Options{ObserveResize: obs.observe})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	// Exactly one subscription, on the host-visible element.
	assert.Equal(t, 1, obs.installCount())
	assert.Same(t, c.Element(), obs.element)

	// An external size-change notification triggers another pass.
	frame := frameElement(t, c)
	slot.SetStyle("width", "970px")
	obs.fire()
	assert.Equal(t, "970px", frame.GetAttribute("width"))
}

func TestSecureDisableResize(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	obs := &recordingObserver{}
	c, err := NewSecure(slot, Options{DisableResize: true, ObserveResize: obs.observe})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	// No subscription at all, but the initial pass still ran.
	assert.Equal(t, 0, obs.installCount())
	frame := frameElement(t, c)
	assert.Equal(t, "300px", frame.GetAttribute("width"))
}

func TestSecureDefaultObserverUsesResizeEvent(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)
	frame := frameElement(t, c)

	// The default capability listens on the host element's resize event.
	el := c.Element()
	require.Equal(t, 1, el.ListenerCount(dom.EventResize))

	slot.SetStyle("width", "468px")
	slot.SetStyle("height", "60px")
	el.Dispatch(dom.Event{Type: dom.EventResize})

	assert.Equal(t, "468px", frame.GetAttribute("width"))
	assert.Equal(t, "60px", frame.GetAttribute("height"))
}

func TestSecureResizeUpdatesFrameViewport(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	defer c.Destroy()

	awaitReady(t, c)

	w, h := c.VideoElement().Document().Viewport()
	assert.Equal(t, 300, w)
	assert.Equal(t, 250, h)

	slot.SetStyle("width", "640px")
	slot.SetStyle("height", "360px")
	require.NoError(t, c.Resize())

	w, h = c.VideoElement().Document().Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)
}

// Scenario from the contract: construct, ready, destroy, then resize fails
// with the exact terminal message.
func TestSecureScenarioResizeAfterDestroy(t *testing.T) {
	_, slot := newSlot(t, 300, 250)

	c, err := NewSecure(slot, Options{})
	require.NoError(t, err)
	awaitReady(t, c)
	c.Destroy()

	err = c.Resize()
	require.Error(t, err)
	assert.Equal(t, "SecureContainer has been destroyed", err.Error())
}
