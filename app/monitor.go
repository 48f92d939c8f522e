// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"golang.org/x/exp/slices"
)

// Monitor is the surface windows are shown on. The canvas backend has
// exactly one.
type Monitor struct{}

var monitors = []Monitor{{}}

// AvailableMonitors lists the monitors.
func AvailableMonitors() []Monitor {
	return slices.Clone(monitors)
}

// PrimaryMonitor returns the monitor windows open on by default.
func PrimaryMonitor() Monitor {
	return monitors[0]
}

// Name returns a human readable name for m.
func (m Monitor) Name() (string, bool) {
	return "Canvas", true
}

// Dimensions is unsupported; see Capabilities.MonitorDimensions.
func (m Monitor) Dimensions() image.Point {
	unsupported("Monitor.Dimensions")
	return image.Point{}
}
