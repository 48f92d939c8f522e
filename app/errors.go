// SPDX-License-Identifier: Unlicense OR MIT

package app

import "gioui.org/webgl/internal/html5"

// CreateError is returned by NewWindow when the browser refuses to create
// a context.
type CreateError struct {
	// Code is the status reported by context creation.
	Code int
}

func (e *CreateError) Error() string {
	return "app: webgl context creation failed: " + describe(html5.Result(e.Code))
}

// describe returns a diagnostic for a native status. It never returns the
// empty string.
func describe(res html5.Result) string {
	switch res {
	case html5.ResultSuccess, html5.ResultDeferred:
		return "internal error (success reported as failure)"
	case html5.ResultNotSupported:
		return "not supported"
	case html5.ResultFailedNotDeferred:
		return "failed not deferred"
	case html5.ResultInvalidTarget:
		return "invalid target"
	case html5.ResultUnknownTarget:
		return "unknown target"
	case html5.ResultInvalidParam:
		return "invalid parameter"
	case html5.ResultFailed:
		return "failed"
	case html5.ResultNoData:
		return "no data"
	default:
		return "undocumented error"
	}
}
