// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app provides a window backed by a browser canvas and its WebGL
context.

A Window owns exactly one WebGL context, created by NewWindow and
destroyed by Close:

	w, err := app.NewWindow(app.GLVersion(2, 0))
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()
	if err := w.MakeCurrent(); err != nil {
		log.Fatal(err)
	}

# Context loss

The browser may take a context away at any time, for example when the GPU
process crashes. IsClosed reports that condition and must be checked before
issuing further GL work. The ContextEvents option delivers loss and
restoration as they happen.

# Presentation

There is no explicit buffer swap. The browser presents the drawing buffer
whenever control returns to its event loop. SwapBuffers exists for parity
with the other window backends and does nothing.

# Unsupported operations

A canvas has no title, position, window chrome or event queue of its own.
SetTitle and SetPosition are accepted and ignored, Position always reports
the origin, and the outer size equals the inner size. Event polling is not
available; Capabilities reports what the backend implements and calling an
unimplemented operation panics.

Windows are not safe for concurrent use. All calls are expected on the one
goroutine that drives the page.
*/
package app
