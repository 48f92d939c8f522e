// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"strings"
	"testing"

	"gioui.org/webgl/internal/html5"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func TestDescribe(t *testing.T) {
	want := map[html5.Result]string{
		html5.ResultSuccess:           "internal error (success reported as failure)",
		html5.ResultDeferred:          "internal error (success reported as failure)",
		html5.ResultNotSupported:      "not supported",
		html5.ResultFailedNotDeferred: "failed not deferred",
		html5.ResultInvalidTarget:     "invalid target",
		html5.ResultUnknownTarget:     "unknown target",
		html5.ResultInvalidParam:      "invalid parameter",
		html5.ResultFailed:            "failed",
		html5.ResultNoData:            "no data",
	}
	codes := maps.Keys(want)
	slices.Sort(codes)
	for _, res := range codes {
		if got := describe(res); got != want[res] {
			t.Errorf("describe(%d) = %q, want %q", res, got, want[res])
		}
	}
}

func TestDescribeUnknown(t *testing.T) {
	for _, res := range []html5.Result{-8, -100, 2, 1 << 20} {
		if got := describe(res); got != "undocumented error" {
			t.Errorf("describe(%d) = %q", res, got)
		}
	}
}

func TestDescribeNeverEmpty(t *testing.T) {
	for res := html5.Result(-20); res <= 20; res++ {
		if describe(res) == "" {
			t.Errorf("describe(%d) is empty", res)
		}
	}
}

func TestCreateErrorMessage(t *testing.T) {
	err := &CreateError{Code: int(html5.ResultInvalidTarget)}
	msg := err.Error()
	if !strings.HasPrefix(msg, "app: ") {
		t.Errorf("error %q lacks package prefix", msg)
	}
	if !strings.Contains(msg, "invalid target") {
		t.Errorf("error %q does not describe the status", msg)
	}
}
