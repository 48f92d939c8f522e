// SPDX-License-Identifier: Unlicense OR MIT

//go:build !(js && wasm)
// +build !js !wasm

package html5

// Default returns the native API of the running platform.
func Default() API {
	return unsupported{}
}

// unsupported stands in for the browser outside js/wasm. Context creation
// always fails, so no window can be built on top of it.
type unsupported struct{}

func (unsupported) InitContextAttributes(attrs *ContextAttributes) {
	*attrs = DefaultAttributes()
}

func (unsupported) CreateContext(string, *ContextAttributes) ContextHandle {
	return ContextHandle(ResultNotSupported)
}

func (unsupported) IsContextLost(ContextHandle) bool { return true }

func (unsupported) MakeContextCurrent(ContextHandle) Result { return ResultNotSupported }

func (unsupported) GetElementCSSSize(string) (float64, float64, Result) {
	return 0, 0, ResultNotSupported
}

func (unsupported) SetElementCSSSize(string, float64, float64) Result { return ResultNotSupported }

func (unsupported) GetProcAddress(string) uintptr { return 0 }

func (unsupported) DestroyContext(ContextHandle) Result { return ResultNotSupported }

func (unsupported) ExitFullscreen() Result { return ResultNotSupported }

func (unsupported) SetContextEventCallback(ContextHandle, func(ContextEvent)) Result {
	return ResultNotSupported
}
