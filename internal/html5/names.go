// SPDX-License-Identifier: Unlicense OR MIT

package html5

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// webglMethod maps a GL entry point such as glClearColor to its WebGL
// method name, clearColor. Names without the gl prefix are returned
// unchanged.
func webglMethod(name string) string {
	rest := strings.TrimPrefix(name, "gl")
	if rest == name {
		return name
	}
	r, n := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return ""
	}
	return string(unicode.ToLower(r)) + rest[n:]
}

func cssPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
