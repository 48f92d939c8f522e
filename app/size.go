// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"gioui.org/webgl/internal/html5"
)

// InnerSize returns the CSS pixel size of the canvas. It reports false if
// the size cannot be read.
func (w *Window) InnerSize() (image.Point, bool) {
	width, height, res := w.api.GetElementCSSSize(w.target)
	if res != html5.ResultSuccess {
		return image.Point{}, false
	}
	return image.Point{X: int(width), Y: int(height)}, true
}

// OuterSize equals InnerSize; a canvas has no decorations.
func (w *Window) OuterSize() (image.Point, bool) {
	return w.InnerSize()
}

// SetInnerSize requests a new CSS size for the canvas. The browser applies
// it on its next layout, so InnerSize may report the old size until then.
// Failures are ignored.
func (w *Window) SetInnerSize(width, height int) {
	w.api.SetElementCSSSize(w.target, float64(width), float64(height))
}
