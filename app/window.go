// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"gioui.org/webgl/internal/html5"
)

// Window is a canvas and its WebGL context.
type Window struct {
	api    html5.API
	target string
	ctx    *glContext
	closed bool
}

// NewWindow creates a WebGL context on the page canvas. It returns an
// error, and no window, if the browser cannot provide a context with the
// requested attributes. The caller must Close the window.
func NewWindow(options ...Option) (*Window, error) {
	return newWindow(html5.Default(), options...)
}

func newWindow(api html5.API, options ...Option) (*Window, error) {
	cnf := new(Config)
	for _, o := range options {
		o(cnf)
	}
	attrs := negotiate(api, cnf)
	ctx, err := newContext(api, cnf.Target, &attrs)
	if err != nil {
		return nil, err
	}
	w := &Window{
		api:    api,
		target: cnf.Target,
		ctx:    ctx,
	}
	if cnf.ContextEvents != nil {
		ctx.watch(cnf.ContextEvents)
	}
	if sz := cnf.Size; sz != (image.Point{}) {
		w.SetInnerSize(sz.X, sz.Y)
	}
	return w, nil
}

// IsClosed reports whether the context is lost. Callers must check it
// before issuing GL work. A closed Window is always lost.
func (w *Window) IsClosed() bool {
	return w.ctx.lost()
}

// SetTitle does nothing.
func (w *Window) SetTitle(title string) {}

// Position always returns the origin; a canvas has no screen position.
func (w *Window) Position() (image.Point, bool) {
	return image.Point{}, true
}

// SetPosition does nothing.
func (w *Window) SetPosition(x, y int) {}

// PollEvents is not supported by the canvas backend and panics.
func (w *Window) PollEvents() []Event {
	unsupported("PollEvents")
	return nil
}

// WaitEvents is not supported by the canvas backend and panics.
func (w *Window) WaitEvents() []Event {
	unsupported("WaitEvents")
	return nil
}

// MakeCurrent binds the window context for GL calls. GL functions must
// not be called before MakeCurrent has succeeded.
func (w *Window) MakeCurrent() error {
	return w.ctx.makeCurrent()
}

// ProcAddress resolves a GL function by name, such as "glClearColor". It
// returns 0 for unknown functions.
func (w *Window) ProcAddress(name string) uintptr {
	return w.api.GetProcAddress(name)
}

// SwapBuffers does nothing. The browser presents the drawing buffer when
// control returns to its event loop. Call it anyway at the end of a frame
// so the same code runs on every backend.
func (w *Window) SwapBuffers() {}

// Capabilities reports the optional operations the canvas backend
// implements.
func (w *Window) Capabilities() Capabilities {
	return Capabilities{}
}

// Close leaves fullscreen, if possible, and destroys the context. Calls
// after the first do nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	// Fullscreen exit is best effort; the context is destroyed
	// regardless.
	w.api.ExitFullscreen()
	w.ctx.release()
}
