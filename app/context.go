// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"

	"gioui.org/webgl/internal/html5"
)

// glContext owns a native WebGL context handle from creation until
// release.
type glContext struct {
	api      html5.API
	handle   html5.ContextHandle
	watching bool
	released bool
}

func newContext(api html5.API, target string, attrs *html5.ContextAttributes) (*glContext, error) {
	h := api.CreateContext(target, attrs)
	if !h.Valid() {
		return nil, &CreateError{Code: int(h)}
	}
	return &glContext{api: api, handle: h}, nil
}

func (c *glContext) watch(fn func(ContextEvent)) {
	res := c.api.SetContextEventCallback(c.handle, func(e html5.ContextEvent) {
		switch e {
		case html5.ContextLost:
			fn(ContextLost)
		case html5.ContextRestored:
			fn(ContextRestored)
		}
	})
	c.watching = res == html5.ResultSuccess
}

// lost reports whether the browser invalidated the context. A released
// context is always lost.
func (c *glContext) lost() bool {
	return c.released || c.api.IsContextLost(c.handle)
}

func (c *glContext) makeCurrent() error {
	if c.released {
		return errors.New("app: context released")
	}
	if res := c.api.MakeContextCurrent(c.handle); res != html5.ResultSuccess {
		return fmt.Errorf("app: make current failed: %s", describe(res))
	}
	return nil
}

// release destroys the native context. Only the first call has an
// effect.
func (c *glContext) release() {
	if c.released {
		return
	}
	c.released = true
	if c.watching {
		c.api.SetContextEventCallback(c.handle, nil)
		c.watching = false
	}
	c.api.DestroyContext(c.handle)
}
