// SPDX-License-Identifier: Unlicense OR MIT

package app

import "gioui.org/webgl/internal/html5"

// negotiate builds the creation attributes for cnf: the platform
// defaults, with only the requested version and explicit overrides
// replaced.
func negotiate(api html5.API, cnf *Config) html5.ContextAttributes {
	var attrs html5.ContextAttributes
	api.InitContextAttributes(&attrs)
	if v := cnf.Version; v != nil {
		attrs.MajorVersion = v.Major
		attrs.MinorVersion = v.Minor
	}
	for _, o := range cnf.attrs {
		o(&attrs)
	}
	return attrs
}
