// SPDX-License-Identifier: Unlicense OR MIT

// Package html5 is the native WebGL context-creation surface used by the
// canvas window backend. It mirrors the emscripten html5.h calls the
// backend depends on: attribute defaults, context creation and
// destruction, current context binding, canvas CSS sizing, function
// lookup and fullscreen exit.
//
// The browser implementation is only available on js/wasm. On every other
// target Default returns an implementation that reports ResultNotSupported.
package html5

// Result is the status returned by native calls.
type Result int

const (
	ResultSuccess           Result = 0
	ResultDeferred          Result = 1
	ResultNotSupported      Result = -1
	ResultFailedNotDeferred Result = -2
	ResultInvalidTarget     Result = -3
	ResultUnknownTarget     Result = -4
	ResultInvalidParam      Result = -5
	ResultFailed            Result = -6
	ResultNoData            Result = -7
)

// ContextHandle identifies a WebGL context. Positive values are live
// handles; zero and negative values are failures, the negative ones
// carrying a Result.
type ContextHandle int

// Valid reports whether h refers to a created context.
func (h ContextHandle) Valid() bool {
	return h > 0
}

// PowerPreference is the GPU selection hint passed to the browser.
type PowerPreference int

const (
	PowerPreferenceDefault PowerPreference = iota
	PowerPreferenceLowPower
	PowerPreferenceHighPerformance
)

func (p PowerPreference) String() string {
	switch p {
	case PowerPreferenceLowPower:
		return "low-power"
	case PowerPreferenceHighPerformance:
		return "high-performance"
	default:
		return "default"
	}
}

// ContextAttributes configures context creation.
type ContextAttributes struct {
	Alpha                        bool
	Depth                        bool
	Stencil                      bool
	Antialias                    bool
	PremultipliedAlpha           bool
	PreserveDrawingBuffer        bool
	PowerPreference              PowerPreference
	FailIfMajorPerformanceCaveat bool

	MajorVersion int
	MinorVersion int

	EnableExtensionsByDefault    bool
	ExplicitSwapControl          bool
	RenderViaOffscreenBackBuffer bool
}

// DefaultAttributes returns the attribute values browsers use when a
// context is requested without attributes.
func DefaultAttributes() ContextAttributes {
	return ContextAttributes{
		Alpha:                     true,
		Depth:                     true,
		Antialias:                 true,
		PremultipliedAlpha:        true,
		MajorVersion:              1,
		EnableExtensionsByDefault: true,
	}
}

// ContextEvent is a change in context availability reported by the
// browser.
type ContextEvent int

const (
	ContextLost ContextEvent = iota
	ContextRestored
)

func (e ContextEvent) String() string {
	switch e {
	case ContextLost:
		return "ContextLost"
	case ContextRestored:
		return "ContextRestored"
	default:
		panic("unreachable")
	}
}

// API is the native context-creation interface.
//
// A target is a CSS selector naming a canvas element. The empty target
// selects DefaultTarget.
type API interface {
	// InitContextAttributes fills attrs with the platform defaults.
	InitContextAttributes(attrs *ContextAttributes)
	// CreateContext creates a context on target. A non-positive handle
	// reports failure.
	CreateContext(target string, attrs *ContextAttributes) ContextHandle
	// IsContextLost reports whether the browser has invalidated the
	// context.
	IsContextLost(h ContextHandle) bool
	// MakeContextCurrent binds h as the current context. The zero handle
	// unbinds.
	MakeContextCurrent(h ContextHandle) Result
	// GetElementCSSSize returns the CSS pixel size of target.
	GetElementCSSSize(target string) (width, height float64, res Result)
	// SetElementCSSSize requests a new CSS pixel size for target. The
	// layout change is applied by the browser later.
	SetElementCSSSize(target string, width, height float64) Result
	// GetProcAddress resolves a GL function by name. Zero means not
	// found.
	GetProcAddress(name string) uintptr
	// DestroyContext releases h.
	DestroyContext(h ContextHandle) Result
	// ExitFullscreen leaves fullscreen mode.
	ExitFullscreen() Result
	// SetContextEventCallback registers fn for loss and restoration
	// of h. A nil fn removes the callback.
	SetContextEventCallback(h ContextHandle, fn func(ContextEvent)) Result
}

// DefaultTarget is the selector of the canvas used for the empty target.
const DefaultTarget = "#canvas"

// ResolveTarget maps the empty target to DefaultTarget.
func ResolveTarget(target string) string {
	if target == "" {
		return DefaultTarget
	}
	return target
}
