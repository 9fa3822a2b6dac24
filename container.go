package adsurface

import (
	"context"
	"sync"

	"github.com/dop251/goja"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adkit-io/adsurface/dom"
	"github.com/adkit-io/adsurface/internal/metrics"
)

const baseComponent = "Container"

// Container renders the ad surface directly in the host document, with no
// isolation between ad content and the page.
type Container struct {
	mu   sync.Mutex
	opts Options

	id      string
	logger  *zap.Logger
	metrics *metrics.Metrics

	element      *dom.Element
	videoElement *dom.Element

	destroyed bool
	readyCh   chan struct{}
}

// New creates a base surface under placeholder. Setup is synchronous: the
// video element is attached immediately and Ready resolves at once.
func New(placeholder *dom.Element, opts Options) (*Container, error) {
	if placeholder == nil {
		return nil, ErrNoPlaceholder
	}
	opts = opts.withDefaults()

	c := &Container{
		opts:    opts,
		id:      uuid.NewString(),
		metrics: metrics.Default(),
		readyCh: make(chan struct{}),
	}
	c.logger = opts.Logger.Named("adsurface").With(zap.String("container", c.id))

	doc := placeholder.Document()

	element := doc.CreateElement("div")
	element.AddClass(ClassContainer)
	element.SetStyle("width", fullBleed)
	element.SetStyle("height", fullBleed)

	video := opts.VideoElement
	if video == nil {
		video = doc.CreateElement("video")
	}
	video.SetStyle("width", fullBleed)
	video.SetStyle("height", fullBleed)
	element.AppendChild(video)

	placeholder.AppendChild(element)

	c.element = element
	c.videoElement = video
	close(c.readyCh)

	c.metrics.ContainersCreated.WithLabelValues("base").Inc()
	c.metrics.ContainersActive.Inc()
	return c, nil
}

// Ready resolves immediately for the base variant; setup has no
// asynchronous phase.
func (c *Container) Ready(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	select {
	case <-c.readyCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Destroy detaches the host-visible element and releases every reference.
func (c *Container) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	element := c.element
	c.element = nil
	c.videoElement = nil
	c.mu.Unlock()

	if element != nil {
		element.Remove()
	}

	c.metrics.ContainersDestroyed.Inc()
	c.metrics.ContainersActive.Dec()
	c.logger.Debug("container destroyed")
}

// Destroyed reports whether Destroy has been called.
func (c *Container) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Element returns the host-visible element, or nil after Destroy.
func (c *Container) Element() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.element
}

// VideoElement returns the video element, or nil after Destroy.
func (c *Container) VideoElement() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.videoElement
}

// Context is always nil for the base variant; there is no isolated frame.
func (c *Container) Context() *goja.Object {
	return nil
}

func (c *Container) guard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return &destroyedError{component: baseComponent}
	}
	return nil
}
