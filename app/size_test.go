// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"testing"

	"gioui.org/webgl/internal/html5"
)

func TestInnerSize(t *testing.T) {
	w, api := newTestWindow(t)
	api.Width, api.Height = 640.75, 480.25
	sz, ok := w.InnerSize()
	if !ok {
		t.Fatal("size query failed")
	}
	if want := image.Pt(640, 480); sz != want {
		t.Errorf("got size %v, want %v", sz, want)
	}
}

func TestInnerSizeFailure(t *testing.T) {
	for _, res := range []html5.Result{html5.ResultNotSupported, html5.ResultInvalidTarget, html5.ResultUnknownTarget} {
		w, api := newTestWindow(t)
		api.SizeResult = res
		if sz, ok := w.InnerSize(); ok {
			t.Errorf("result %d: got size %v, want none", res, sz)
		}
	}
}

func TestOuterSizeMatchesInner(t *testing.T) {
	w, api := newTestWindow(t)
	check := func() {
		t.Helper()
		in, inOK := w.InnerSize()
		out, outOK := w.OuterSize()
		if in != out || inOK != outOK {
			t.Errorf("inner (%v, %v) differs from outer (%v, %v)", in, inOK, out, outOK)
		}
	}
	check()
	w.SetInnerSize(100, 200)
	check()
	api.ApplyResize()
	check()
	api.SizeResult = html5.ResultFailed
	check()
}

func TestSetInnerSizeEventuallyApplies(t *testing.T) {
	w, api := newTestWindow(t)
	before, _ := w.InnerSize()
	w.SetInnerSize(800, 600)
	if sz, _ := w.InnerSize(); sz != before {
		t.Errorf("resize applied synchronously: got %v, want %v", sz, before)
	}
	api.ApplyResize()
	if sz, _ := w.InnerSize(); sz != image.Pt(800, 600) {
		t.Errorf("got size %v after layout, want (800,600)", sz)
	}
}

func TestSetInnerSizeIgnoresFailure(t *testing.T) {
	w, api := newTestWindow(t)
	api.SizeResult = html5.ResultInvalidTarget
	w.SetInnerSize(10, 10)
	api.SizeResult = html5.ResultSuccess
	api.ApplyResize()
	if sz, _ := w.InnerSize(); sz != image.Pt(300, 150) {
		t.Errorf("failed resize changed size to %v", sz)
	}
}
