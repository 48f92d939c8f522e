// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"gioui.org/webgl/internal/html5"
)

// Config describes a window to create.
type Config struct {
	// Title is accepted for parity with other backends. A canvas has
	// no title.
	Title string
	// Target is the CSS selector of the canvas. Empty means "#canvas".
	Target string
	// Size is the CSS size requested after creation. The zero value
	// leaves the canvas as laid out by the page.
	Size image.Point
	// Version is the requested GL version, or nil for the platform
	// default.
	Version *Version
	// ContextEvents receives context loss and restoration.
	ContextEvents func(ContextEvent)

	// attrs override platform defaults, in order.
	attrs []func(*html5.ContextAttributes)
}

// Version is a GL major and minor version.
type Version struct {
	Major, Minor int
}

// Option configures a window.
type Option func(cnf *Config)

// ContextEvent reports a change in context availability.
type ContextEvent int

const (
	// ContextLost is sent when the browser invalidates the context.
	ContextLost ContextEvent = iota
	// ContextRestored is sent when a lost context becomes usable again.
	// GL resources created before the loss are gone.
	ContextRestored
)

func (e ContextEvent) String() string {
	switch e {
	case ContextLost:
		return "ContextLost"
	case ContextRestored:
		return "ContextRestored"
	default:
		panic("invalid ContextEvent")
	}
}

// GLVersion requests a GL version. The numbers are passed to the browser
// unchecked; an unavailable version makes NewWindow fail.
func GLVersion(major, minor int) Option {
	return func(cnf *Config) {
		cnf.Version = &Version{Major: major, Minor: minor}
	}
}

// Title sets the title of the window. It has no effect on a canvas.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Target selects the canvas element by CSS selector.
func Target(selector string) Option {
	return func(cnf *Config) {
		cnf.Target = selector
	}
}

// Size requests a CSS size for the canvas.
func Size(w, h int) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Point{X: w, Y: h}
	}
}

// ContextEvents registers fn for context loss and restoration.
func ContextEvents(fn func(ContextEvent)) Option {
	return func(cnf *Config) {
		cnf.ContextEvents = fn
	}
}

// Antialias overrides the default multisampling request.
func Antialias(enable bool) Option {
	return attribute(func(a *html5.ContextAttributes) {
		a.Antialias = enable
	})
}

// PreserveDrawingBuffer keeps the drawing buffer contents after
// presentation, at a performance cost.
func PreserveDrawingBuffer(enable bool) Option {
	return attribute(func(a *html5.ContextAttributes) {
		a.PreserveDrawingBuffer = enable
	})
}

// HighPerformance asks the browser for the high-performance GPU.
func HighPerformance() Option {
	return attribute(func(a *html5.ContextAttributes) {
		a.PowerPreference = html5.PowerPreferenceHighPerformance
	})
}

// LowPower asks the browser for the low-power GPU.
func LowPower() Option {
	return attribute(func(a *html5.ContextAttributes) {
		a.PowerPreference = html5.PowerPreferenceLowPower
	})
}

func attribute(f func(*html5.ContextAttributes)) Option {
	return func(cnf *Config) {
		cnf.attrs = append(cnf.attrs, f)
	}
}
