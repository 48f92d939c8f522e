// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"gioui.org/webgl/internal/html5"
	"gioui.org/webgl/internal/html5/html5test"
)

func TestNegotiateKeepsDefaults(t *testing.T) {
	api := html5test.New()
	// Non-standard defaults expose any field negotiation touches.
	api.Defaults.Stencil = true
	api.Defaults.Alpha = false
	api.Defaults.PowerPreference = html5.PowerPreferenceLowPower
	api.Defaults.MajorVersion = 7
	api.Defaults.MinorVersion = 3

	versions := []*Version{
		nil,
		{Major: 1, Minor: 0},
		{Major: 2, Minor: 0},
		{Major: 3, Minor: 2},
		{Major: -1, Minor: 99},
	}
	for _, v := range versions {
		cnf := &Config{Version: v}
		got := negotiate(api, cnf)
		want := api.Defaults
		if v != nil {
			want.MajorVersion = v.Major
			want.MinorVersion = v.Minor
		}
		if got != want {
			t.Errorf("version %v: got attributes %+v, want %+v", v, got, want)
		}
	}
	if n := len(api.Created); n != 0 {
		t.Errorf("negotiation created %d contexts", n)
	}
}

func TestNegotiateOverrides(t *testing.T) {
	api := html5test.New()
	cnf := new(Config)
	for _, o := range []Option{
		GLVersion(2, 0),
		Antialias(false),
		PreserveDrawingBuffer(true),
		HighPerformance(),
	} {
		o(cnf)
	}
	got := negotiate(api, cnf)
	want := html5.DefaultAttributes()
	want.MajorVersion = 2
	want.Antialias = false
	want.PreserveDrawingBuffer = true
	want.PowerPreference = html5.PowerPreferenceHighPerformance
	if got != want {
		t.Errorf("got attributes %+v, want %+v", got, want)
	}
}

func TestNegotiateLastOverrideWins(t *testing.T) {
	api := html5test.New()
	cnf := new(Config)
	HighPerformance()(cnf)
	LowPower()(cnf)
	if got := negotiate(api, cnf).PowerPreference; got != html5.PowerPreferenceLowPower {
		t.Errorf("power preference %v, want low-power", got)
	}
}

func TestSizeOptionPanics(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Size(%d, %d) did not panic", sz[0], sz[1])
				}
			}()
			Size(sz[0], sz[1])
		}()
	}
}
