// SPDX-License-Identifier: Unlicense OR MIT

//go:build js && wasm
// +build js,wasm

package html5

import (
	"strconv"
	"syscall/js"

	"golang.org/x/exp/slices"
)

type browser struct {
	contexts map[ContextHandle]*webglContext
	next     ContextHandle
	current  ContextHandle
	// procs holds the WebGL method names handed out by GetProcAddress.
	// An address is an index into procs plus one.
	procs []string
}

type webglContext struct {
	ctx js.Value
	cnv js.Value

	listening bool
	lost      js.Func
	restored  js.Func
}

var platform = newBrowser()

func newBrowser() *browser {
	return &browser{
		contexts: make(map[ContextHandle]*webglContext),
	}
}

// Default returns the native API of the running platform.
func Default() API {
	return platform
}

func (b *browser) InitContextAttributes(attrs *ContextAttributes) {
	*attrs = DefaultAttributes()
}

func (b *browser) CreateContext(target string, attrs *ContextAttributes) ContextHandle {
	if attrs == nil {
		return ContextHandle(ResultInvalidParam)
	}
	kind := "webgl"
	if attrs.MajorVersion >= 2 {
		kind = "webgl2"
	}
	if attrs.ExplicitSwapControl {
		// The browser presents when control returns to the event loop.
		return ContextHandle(ResultNotSupported)
	}
	cnv, res := findElement(target)
	if res != ResultSuccess {
		return ContextHandle(res)
	}
	if cnv.Get("getContext").Type() != js.TypeFunction {
		return ContextHandle(ResultInvalidTarget)
	}
	ctx := cnv.Call("getContext", kind, contextArgs(attrs))
	if ctx.IsNull() {
		return ContextHandle(ResultFailed)
	}
	if attrs.EnableExtensionsByDefault {
		enableExtensions(ctx)
	}
	b.next++
	h := b.next
	b.contexts[h] = &webglContext{ctx: ctx, cnv: cnv}
	return h
}

func (b *browser) IsContextLost(h ContextHandle) bool {
	c, ok := b.contexts[h]
	if !ok {
		return true
	}
	return c.ctx.Call("isContextLost").Bool()
}

func (b *browser) MakeContextCurrent(h ContextHandle) Result {
	if h == 0 {
		b.current = 0
		return ResultSuccess
	}
	if _, ok := b.contexts[h]; !ok {
		return ResultInvalidTarget
	}
	b.current = h
	return ResultSuccess
}

func (b *browser) GetElementCSSSize(target string) (float64, float64, Result) {
	el, res := findElement(target)
	if res != ResultSuccess {
		return 0, 0, res
	}
	rect := el.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float(), ResultSuccess
}

func (b *browser) SetElementCSSSize(target string, width, height float64) Result {
	el, res := findElement(target)
	if res != ResultSuccess {
		return res
	}
	style := el.Get("style")
	style.Set("width", cssPixels(width))
	style.Set("height", cssPixels(height))
	return ResultSuccess
}

func (b *browser) GetProcAddress(name string) uintptr {
	method := webglMethod(name)
	if method == "" {
		return 0
	}
	if i := slices.Index(b.procs, method); i >= 0 {
		return uintptr(i + 1)
	}
	if !isWebGLMethod(method) {
		return 0
	}
	b.procs = append(b.procs, method)
	return uintptr(len(b.procs))
}

func (b *browser) DestroyContext(h ContextHandle) Result {
	c, ok := b.contexts[h]
	if !ok {
		return ResultInvalidTarget
	}
	c.removeListeners()
	if b.current == h {
		b.current = 0
	}
	delete(b.contexts, h)
	return ResultSuccess
}

func (b *browser) ExitFullscreen() Result {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.Get("exitFullscreen").Type() != js.TypeFunction {
		return ResultNotSupported
	}
	// exitFullscreen rejects when nothing is fullscreen.
	if el := doc.Get("fullscreenElement"); el.IsNull() || el.IsUndefined() {
		return ResultSuccess
	}
	doc.Call("exitFullscreen")
	return ResultDeferred
}

func (b *browser) SetContextEventCallback(h ContextHandle, fn func(ContextEvent)) Result {
	c, ok := b.contexts[h]
	if !ok {
		return ResultInvalidTarget
	}
	c.removeListeners()
	if fn == nil {
		return ResultSuccess
	}
	c.lost = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		// Without preventDefault the browser never restores the context.
		args[0].Call("preventDefault")
		fn(ContextLost)
		return nil
	})
	c.restored = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(ContextRestored)
		return nil
	})
	c.cnv.Call("addEventListener", "webglcontextlost", c.lost)
	c.cnv.Call("addEventListener", "webglcontextrestored", c.restored)
	c.listening = true
	return ResultSuccess
}

func (c *webglContext) removeListeners() {
	if !c.listening {
		return
	}
	c.cnv.Call("removeEventListener", "webglcontextlost", c.lost)
	c.cnv.Call("removeEventListener", "webglcontextrestored", c.restored)
	c.lost.Release()
	c.restored.Release()
	c.listening = false
}

// Call invokes the WebGL function at addr on the current context. It
// panics if no context is current or addr was not returned by
// GetProcAddress.
func Call(addr uintptr, args ...interface{}) js.Value {
	b := platform
	if addr == 0 || addr > uintptr(len(b.procs)) {
		panic("html5: invalid proc address " + strconv.FormatUint(uint64(addr), 10))
	}
	c, ok := b.contexts[b.current]
	if !ok {
		panic("html5: no current context")
	}
	return c.ctx.Call(b.procs[addr-1], args...)
}

// findElement looks up the element named by target.
func findElement(target string) (el js.Value, res Result) {
	defer func() {
		if r := recover(); r != nil {
			// querySelector throws on malformed selectors.
			if _, ok := r.(js.Error); !ok {
				panic(r)
			}
			el, res = js.Null(), ResultInvalidParam
		}
	}()
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return js.Null(), ResultNotSupported
	}
	el = doc.Call("querySelector", ResolveTarget(target))
	if el.IsNull() {
		return el, ResultUnknownTarget
	}
	return el, ResultSuccess
}

func contextArgs(attrs *ContextAttributes) map[string]interface{} {
	return map[string]interface{}{
		"alpha":                        attrs.Alpha,
		"depth":                        attrs.Depth,
		"stencil":                      attrs.Stencil,
		"antialias":                    attrs.Antialias,
		"premultipliedAlpha":           attrs.PremultipliedAlpha,
		"preserveDrawingBuffer":        attrs.PreserveDrawingBuffer,
		"powerPreference":              attrs.PowerPreference.String(),
		"failIfMajorPerformanceCaveat": attrs.FailIfMajorPerformanceCaveat,
	}
}

func enableExtensions(ctx js.Value) {
	exts := ctx.Call("getSupportedExtensions")
	if exts.IsNull() {
		return
	}
	for i := 0; i < exts.Length(); i++ {
		ctx.Call("getExtension", exts.Index(i))
	}
}

func isWebGLMethod(method string) bool {
	object := js.Global().Get("Object")
	for _, class := range []string{"WebGL2RenderingContext", "WebGLRenderingContext"} {
		c := js.Global().Get(class)
		if c.IsUndefined() {
			continue
		}
		desc := object.Call("getOwnPropertyDescriptor", c.Get("prototype"), method)
		if desc.IsUndefined() {
			continue
		}
		if desc.Get("value").Type() == js.TypeFunction {
			return true
		}
	}
	return false
}
