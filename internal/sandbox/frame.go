package sandbox

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/adkit-io/adsurface/dom"
)

// ErrClosed is returned when running a script against a closed frame.
var ErrClosed = errors.New("frame is closed")

// Config defines frame configuration.
type Config struct {
	ViewportWidth  int
	ViewportHeight int
	Logger         *zap.Logger
}

// Frame is one isolated rendering context: a sub-document plus the VM that
// executes scripts against it.
type Frame struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	doc    *dom.Document
	window *goja.Object
	logger *zap.Logger
	closed bool
}

// New creates a frame with its own document and VM. The returned frame is
// ready to execute scripts; callers decide when its load event is delivered.
func New(cfg Config) *Frame {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Frame{
		vm:     goja.New(),
		doc:    dom.NewDocument(cfg.ViewportWidth, cfg.ViewportHeight),
		logger: logger.Named("frame"),
	}
	f.bindGlobals()
	return f
}

// Document returns the frame's sub-document.
func (f *Frame) Document() *dom.Document {
	return f.doc
}

// Window returns the frame's global object.
func (f *Frame) Window() *goja.Object {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.window
}

// SetViewport updates the sub-document viewport and the window dimensions
// visible to frame scripts.
func (f *Frame) SetViewport(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.doc.SetViewport(width, height)
	f.window.Set("innerWidth", width)
	f.window.Set("innerHeight", height)
}

// Run executes script source in the frame VM. The name identifies the
// script in stack traces, typically its source URL.
func (f *Frame) Run(name, src string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if _, err := f.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// Close tears the frame down. Subsequent Run calls fail with ErrClosed.
func (f *Frame) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.vm.Interrupt("frame closed")
	f.vm = nil
	f.window = nil
}
