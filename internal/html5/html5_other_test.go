// SPDX-License-Identifier: Unlicense OR MIT

//go:build !(js && wasm)
// +build !js !wasm

package html5

import "testing"

func TestUnsupportedPlatform(t *testing.T) {
	api := Default()
	var attrs ContextAttributes
	api.InitContextAttributes(&attrs)
	if attrs != DefaultAttributes() {
		t.Errorf("got defaults %+v", attrs)
	}
	h := api.CreateContext("", &attrs)
	if h.Valid() {
		t.Fatalf("context creation succeeded with handle %d", h)
	}
	if Result(h) != ResultNotSupported {
		t.Errorf("creation failed with %d, want %d", h, ResultNotSupported)
	}
	if !api.IsContextLost(h) {
		t.Error("unsupported context not reported lost")
	}
	if _, _, res := api.GetElementCSSSize(""); res == ResultSuccess {
		t.Error("size query succeeded")
	}
	if addr := api.GetProcAddress("glClear"); addr != 0 {
		t.Errorf("resolved glClear to %#x", addr)
	}
}
