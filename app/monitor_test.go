// SPDX-License-Identifier: Unlicense OR MIT

package app

import "testing"

func TestMonitors(t *testing.T) {
	ms := AvailableMonitors()
	if len(ms) != 1 {
		t.Fatalf("got %d monitors, want 1", len(ms))
	}
	if ms[0] != PrimaryMonitor() {
		t.Error("primary monitor is not the available monitor")
	}
	name, ok := PrimaryMonitor().Name()
	if !ok || name != "Canvas" {
		t.Errorf("got name %q, %v", name, ok)
	}
	_ = append(ms[:0], Monitor{}, Monitor{})
	if n := len(AvailableMonitors()); n != 1 {
		t.Errorf("caller modified monitor list, got %d monitors", n)
	}
}

func TestMonitorDimensionsUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dimensions did not panic")
		}
	}()
	PrimaryMonitor().Dimensions()
}
