package adsurface

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adkit-io/adsurface/dom"
)

// newSlot builds a host document with one fixed-size placeholder.
func newSlot(t *testing.T, width, height int) (*dom.Document, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument(1280, 720)
	slot := doc.CreateElement("div")
	slot.SetID("ad-slot")
	slot.SetStyle("width", fmt.Sprintf("%dpx", width))
	slot.SetStyle("height", fmt.Sprintf("%dpx", height))
	doc.Body().AppendChild(slot)
	return doc, slot
}

// stubFetcher serves script sources from memory.
type stubFetcher struct {
	mu      sync.Mutex
	sources map[string]string
	err     error
	calls   []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	if f.err != nil {
		return "", f.err
	}
	src, ok := f.sources[url]
	if !ok {
		return "", errors.New("not found: " + url)
	}
	return src, nil
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// recordingObserver captures the resize subscription instead of installing a
// DOM listener, giving tests a controllable stand-in for the host page's
// resize-observation utility.
type recordingObserver struct {
	mu       sync.Mutex
	installs int
	element  *dom.Element
	callback func()
}

func (o *recordingObserver) observe(el *dom.Element, callback func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.installs++
	o.element = el
	o.callback = callback
}

func (o *recordingObserver) installCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.installs
}

func (o *recordingObserver) fire() {
	o.mu.Lock()
	cb := o.callback
	o.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func awaitReady(t *testing.T, s Surface) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Ready(ctx))
}
