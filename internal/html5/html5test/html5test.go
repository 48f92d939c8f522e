// SPDX-License-Identifier: Unlicense OR MIT

// Package html5test provides a scriptable html5.API for tests.
package html5test

import (
	"gioui.org/webgl/internal/html5"

	"golang.org/x/exp/slices"
)

// API records every native call and answers from its fields.
type API struct {
	// Defaults is what InitContextAttributes reports.
	Defaults html5.ContextAttributes
	// Handle is returned by the next CreateContext.
	Handle html5.ContextHandle
	// Lost is the reply to IsContextLost for live handles.
	Lost bool

	// Width and Height are the applied CSS size of the canvas.
	Width, Height float64
	// SizeResult fails size queries and resizes when not ResultSuccess.
	SizeResult html5.Result

	MakeCurrentResult    html5.Result
	ExitFullscreenResult html5.Result
	// CallbackResult fails callback registration when not ResultSuccess.
	CallbackResult html5.Result
	// Procs maps function names to the addresses GetProcAddress returns.
	Procs map[string]uintptr

	// Created holds the attributes of every CreateContext call.
	Created []html5.ContextAttributes
	// Targets holds the target of every CreateContext call.
	Targets []string
	// Current is the handle bound by MakeContextCurrent.
	Current html5.ContextHandle
	// Destroyed holds every handle passed to DestroyContext.
	Destroyed []html5.ContextHandle
	// ExitFullscreenCalls counts ExitFullscreen calls.
	ExitFullscreenCalls int
	// Calls is the order of lifecycle calls, by name.
	Calls []string

	live      []html5.ContextHandle
	callbacks map[html5.ContextHandle]func(html5.ContextEvent)
	pending   *[2]float64
}

var _ html5.API = (*API)(nil)

// New returns a fake whose next context creation succeeds with handle 1
// on a 300x150 canvas, the browser default canvas size.
func New() *API {
	return &API{
		Defaults:  html5.DefaultAttributes(),
		Handle:    1,
		Width:     300,
		Height:    150,
		Procs:     make(map[string]uintptr),
		callbacks: make(map[html5.ContextHandle]func(html5.ContextEvent)),
	}
}

func (a *API) InitContextAttributes(attrs *html5.ContextAttributes) {
	a.Calls = append(a.Calls, "InitContextAttributes")
	*attrs = a.Defaults
}

func (a *API) CreateContext(target string, attrs *html5.ContextAttributes) html5.ContextHandle {
	a.Calls = append(a.Calls, "CreateContext")
	a.Created = append(a.Created, *attrs)
	a.Targets = append(a.Targets, target)
	if a.Handle.Valid() {
		a.live = append(a.live, a.Handle)
	}
	return a.Handle
}

func (a *API) IsContextLost(h html5.ContextHandle) bool {
	if !a.IsLive(h) {
		return true
	}
	return a.Lost
}

func (a *API) MakeContextCurrent(h html5.ContextHandle) html5.Result {
	a.Calls = append(a.Calls, "MakeContextCurrent")
	if a.MakeCurrentResult != html5.ResultSuccess {
		return a.MakeCurrentResult
	}
	if h != 0 && !a.IsLive(h) {
		return html5.ResultInvalidTarget
	}
	a.Current = h
	return html5.ResultSuccess
}

func (a *API) GetElementCSSSize(target string) (float64, float64, html5.Result) {
	if a.SizeResult != html5.ResultSuccess {
		return 0, 0, a.SizeResult
	}
	return a.Width, a.Height, html5.ResultSuccess
}

// SetElementCSSSize records the request. Like a browser, the new size is
// not visible until ApplyResize runs.
func (a *API) SetElementCSSSize(target string, width, height float64) html5.Result {
	if a.SizeResult != html5.ResultSuccess {
		return a.SizeResult
	}
	a.pending = &[2]float64{width, height}
	return html5.ResultSuccess
}

// ApplyResize applies the last requested CSS size, as the browser does on
// its next layout.
func (a *API) ApplyResize() {
	if a.pending == nil {
		return
	}
	a.Width, a.Height = a.pending[0], a.pending[1]
	a.pending = nil
}

func (a *API) GetProcAddress(name string) uintptr {
	return a.Procs[name]
}

func (a *API) DestroyContext(h html5.ContextHandle) html5.Result {
	a.Calls = append(a.Calls, "DestroyContext")
	a.Destroyed = append(a.Destroyed, h)
	i := slices.Index(a.live, h)
	if i < 0 {
		return html5.ResultInvalidTarget
	}
	a.live = slices.Delete(a.live, i, i+1)
	delete(a.callbacks, h)
	if a.Current == h {
		a.Current = 0
	}
	return html5.ResultSuccess
}

func (a *API) ExitFullscreen() html5.Result {
	a.Calls = append(a.Calls, "ExitFullscreen")
	a.ExitFullscreenCalls++
	return a.ExitFullscreenResult
}

func (a *API) SetContextEventCallback(h html5.ContextHandle, fn func(html5.ContextEvent)) html5.Result {
	a.Calls = append(a.Calls, "SetContextEventCallback")
	if a.CallbackResult != html5.ResultSuccess {
		return a.CallbackResult
	}
	if !a.IsLive(h) {
		return html5.ResultInvalidTarget
	}
	if fn == nil {
		delete(a.callbacks, h)
	} else {
		a.callbacks[h] = fn
	}
	return html5.ResultSuccess
}

// IsLive reports whether h was created and not yet destroyed.
func (a *API) IsLive(h html5.ContextHandle) bool {
	return slices.Contains(a.live, h)
}

// HasCallback reports whether a context event callback is registered
// for h.
func (a *API) HasCallback(h html5.ContextHandle) bool {
	_, ok := a.callbacks[h]
	return ok
}

// LoseContexts simulates the browser reclaiming every live context.
func (a *API) LoseContexts() {
	a.Lost = true
	a.notify(html5.ContextLost)
}

// RestoreContexts simulates the browser restoring lost contexts.
func (a *API) RestoreContexts() {
	a.Lost = false
	a.notify(html5.ContextRestored)
}

func (a *API) notify(e html5.ContextEvent) {
	for _, h := range a.live {
		if fn := a.callbacks[h]; fn != nil {
			fn(e)
		}
	}
}
