// SPDX-License-Identifier: Unlicense OR MIT

package app

import "image"

// Capabilities reports which optional parts of the window contract a
// backend implements. Calling an operation whose capability is false
// panics, except for the setters documented as no-ops.
type Capabilities struct {
	// Events is set when PollEvents and WaitEvents deliver events.
	Events bool
	// MonitorDimensions is set when Monitor.Dimensions is implemented.
	MonitorDimensions bool
	// Title is set when SetTitle has a visible effect.
	Title bool
	// Position is set when SetPosition moves the window.
	Position bool
	// Fullscreen is set when the backend can enter fullscreen.
	Fullscreen bool
}

// Event is an event delivered by PollEvents or WaitEvents.
type Event interface {
	ImplementsEvent()
}

// driver is the window contract shared by every platform backend.
type driver interface {
	IsClosed() bool
	SetTitle(title string)
	Position() (image.Point, bool)
	SetPosition(x, y int)
	InnerSize() (image.Point, bool)
	OuterSize() (image.Point, bool)
	SetInnerSize(width, height int)
	PollEvents() []Event
	WaitEvents() []Event
	MakeCurrent() error
	ProcAddress(name string) uintptr
	SwapBuffers()
	Capabilities() Capabilities
	Close()
}

var _ driver = (*Window)(nil)

// unsupported panics for an operation outside the capabilities of the
// canvas backend.
func unsupported(op string) {
	panic("app: " + op + " is not supported by the canvas backend")
}
