// SPDX-License-Identifier: Unlicense OR MIT

//go:build js && wasm
// +build js,wasm

package main

// A minimal program clearing the page canvas through a WebGL context.
// The page must contain <canvas id="canvas">.

import (
	"fmt"
	"image/color"
	"log"
	"syscall/js"

	"gioui.org/webgl/app"
	"gioui.org/webgl/internal/html5"

	"golang.org/x/image/colornames"
)

const colorBufferBit = 0x4000

type glFunctions struct {
	clearColor uintptr
	clear      uintptr
	viewport   uintptr
}

func main() {
	restored := make(chan struct{}, 1)
	w, err := app.NewWindow(
		app.GLVersion(2, 0),
		app.Title("canvas"),
		app.ContextEvents(func(e app.ContextEvent) {
			log.Printf("canvas: %v", e)
			if e == app.ContextRestored {
				select {
				case restored <- struct{}{}:
				default:
				}
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	err = loop(w, restored)
	w.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// loop draws a frame per animation frame until the page is hidden for
// good.
func loop(w *app.Window, restored <-chan struct{}) error {
	f, err := loadFunctions(w)
	if err != nil {
		return err
	}
	frames := make(chan struct{}, 1)
	var onFrame js.Func
	onFrame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		// Callbacks must not block the browser event loop.
		select {
		case frames <- struct{}{}:
		default:
		}
		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})
	defer onFrame.Release()
	done := make(chan struct{})
	hidden := false
	onHide := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !hidden && !args[0].Get("persisted").Bool() {
			hidden = true
			close(done)
		}
		return nil
	})
	defer onHide.Release()
	js.Global().Call("addEventListener", "pagehide", onHide)
	js.Global().Call("requestAnimationFrame", onFrame)

	cnv := js.Global().Get("document").Call("querySelector", html5.DefaultTarget)
	palette := []color.RGBA{colornames.Cornflowerblue, colornames.Darkseagreen, colornames.Goldenrod}
	for frame := 0; ; frame++ {
		select {
		case <-done:
			return nil
		case <-frames:
		case <-restored:
		}
		if w.IsClosed() {
			// Wait for the browser to restore the context.
			continue
		}
		if err := w.MakeCurrent(); err != nil {
			return err
		}
		sz, ok := w.InnerSize()
		if !ok {
			continue
		}
		// The drawing buffer keeps its own size; match it to the CSS
		// size so the viewport covers it exactly.
		if cnv.Get("width").Int() != sz.X || cnv.Get("height").Int() != sz.Y {
			cnv.Set("width", sz.X)
			cnv.Set("height", sz.Y)
		}
		c := palette[(frame/60)%len(palette)]
		html5.Call(f.viewport, 0, 0, sz.X, sz.Y)
		html5.Call(f.clearColor, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
		html5.Call(f.clear, colorBufferBit)
		w.SwapBuffers()
	}
}

func loadFunctions(w *app.Window) (*glFunctions, error) {
	f := new(glFunctions)
	for _, fn := range []struct {
		name string
		addr *uintptr
	}{
		{"glClearColor", &f.clearColor},
		{"glClear", &f.clear},
		{"glViewport", &f.viewport},
	} {
		*fn.addr = w.ProcAddress(fn.name)
		if *fn.addr == 0 {
			return nil, fmt.Errorf("canvas: GL function %s not found", fn.name)
		}
	}
	return f, nil
}
