package adsurface

import (
	"context"
	"sync"

	"github.com/dop251/goja"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adkit-io/adsurface/dom"
	"github.com/adkit-io/adsurface/internal/metrics"
	"github.com/adkit-io/adsurface/internal/sandbox"
)

const secureComponent = "SecureContainer"

// SecureContainer renders the ad surface inside an isolated sub-document so
// ad-vendor content cannot reach the host page.
type SecureContainer struct {
	mu   sync.Mutex
	opts Options

	id      string
	logger  *zap.Logger
	metrics *metrics.Metrics

	element      *dom.Element
	frameElement *dom.Element
	frame        *sandbox.Frame
	videoElement *dom.Element
	window       *goja.Object

	destroyed bool
	readyCh   chan struct{}
	destroyCh chan struct{}
}

// NewSecure creates a secure surface under placeholder and begins its
// asynchronous setup. The host-visible element is attached synchronously;
// await Ready before using the script loader or relying on measured size.
func NewSecure(placeholder *dom.Element, opts Options) (*SecureContainer, error) {
	if placeholder == nil {
		return nil, ErrNoPlaceholder
	}
	opts = opts.withDefaults()

	c := &SecureContainer{
		opts:      opts,
		id:        uuid.NewString(),
		metrics:   metrics.Default(),
		readyCh:   make(chan struct{}),
		destroyCh: make(chan struct{}),
	}
	c.logger = opts.Logger.Named("adsurface").With(zap.String("container", c.id))

	// The option exists for interface compatibility with the base variant;
	// the secure variant always creates its own video element in the frame.
	if opts.VideoElement != nil {
		c.logger.Warn("videoElement option is ignored by the secure container")
	}

	doc := placeholder.Document()

	element := doc.CreateElement("div")
	element.AddClass(ClassContainer)
	element.AddClass(ClassContainerSecure)
	element.SetStyle("width", fullBleed)
	element.SetStyle("height", fullBleed)

	frameElement := doc.CreateElement("iframe")
	frameElement.SetAttribute("frameborder", "0")
	frameElement.SetAttribute("scrolling", "no")
	element.AppendChild(frameElement)

	placeholder.AppendChild(element)

	c.element = element
	c.frameElement = frameElement

	// Setup resumes when the frame delivers its initial load event.
	frameElement.AddEventListener(dom.EventLoad, func(dom.Event) {
		c.completeSetup()
	})

	c.metrics.ContainersCreated.WithLabelValues("secure").Inc()
	c.metrics.ContainersActive.Inc()

	go c.loadFrame()
	return c, nil
}

// loadFrame builds the isolated context and delivers the frame's load event.
// Runs once, off the constructing goroutine.
func (c *SecureContainer) loadFrame() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	element := c.element
	frameElement := c.frameElement
	c.mu.Unlock()

	width, height := element.ContentBox()
	frame := sandbox.New(sandbox.Config{
		ViewportWidth:  width,
		ViewportHeight: height,
		Logger:         c.logger,
	})

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		frame.Close()
		return
	}
	c.frame = frame
	c.mu.Unlock()

	frameElement.Dispatch(dom.Event{Type: dom.EventLoad})
}

// completeSetup finishes readiness on the frame's load event: video element,
// context, one size pass, then the resize subscription.
func (c *SecureContainer) completeSetup() {
	c.mu.Lock()
	if c.destroyed || c.frame == nil {
		c.mu.Unlock()
		return
	}
	frameDoc := c.frame.Document()
	video := frameDoc.CreateElement("video")
	video.SetStyle("width", fullBleed)
	video.SetStyle("height", fullBleed)
	frameDoc.Body().AppendChild(video)

	c.videoElement = video
	c.window = c.frame.Window()
	element := c.element
	c.mu.Unlock()

	// Initial size pass happens-before the subscription below, so the first
	// observed resize can never precede it.
	if err := c.Resize(); err != nil {
		return
	}

	if !c.opts.DisableResize {
		c.opts.ObserveResize(element, func() {
			if err := c.Resize(); err != nil {
				c.logger.Debug("resize after destroy ignored", zap.Error(err))
			}
		})
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	close(c.readyCh)
	c.mu.Unlock()

	c.logger.Debug("secure container ready")
}

// Ready blocks until setup completes. Idempotent and re-awaitable.
func (c *SecureContainer) Ready(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	select {
	case <-c.readyCh:
		return nil
	case <-c.destroyCh:
		return &destroyedError{component: secureComponent}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Destroy tears the surface down: detaches the host-visible element, closes
// the frame, and releases every reference. Callable at any point of the
// lifecycle, including before setup completes.
func (c *SecureContainer) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	element := c.element
	frame := c.frame
	c.element = nil
	c.frameElement = nil
	c.videoElement = nil
	c.window = nil
	c.frame = nil
	close(c.destroyCh)
	c.mu.Unlock()

	if element != nil {
		element.Remove()
	}
	if frame != nil {
		frame.Close()
	}

	c.metrics.ContainersDestroyed.Inc()
	c.metrics.ContainersActive.Dec()
	c.logger.Debug("secure container destroyed")
}

// Destroyed reports whether Destroy has been called.
func (c *SecureContainer) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Element returns the host-visible element, or nil after Destroy.
func (c *SecureContainer) Element() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.element
}

// VideoElement returns the video element inside the frame, or nil before
// readiness and after Destroy.
func (c *SecureContainer) VideoElement() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.videoElement
}

// Context returns the isolated frame's global object, or nil before
// readiness and after Destroy.
func (c *SecureContainer) Context() *goja.Object {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window
}

func (c *SecureContainer) guard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return &destroyedError{component: secureComponent}
	}
	return nil
}
