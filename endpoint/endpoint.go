// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package endpoint parses client endpoint descriptors: URLs for HTTP
// services and unix:// paths for local sockets.
//
// It is the client-side counterpart of the binding package: a server
// advertises where it listens, and clients parse that string into an
// [Endpoint] to decide how to reach it.
package endpoint

import (
	"errors"
	"strings"
)

// ErrUnsupportedScheme indicates an endpoint with an unrecognized prefix.
var ErrUnsupportedScheme = errors.New("endpoint: unsupported scheme")

// Endpoint describes how to reach a service. Exactly one of the fields
// distinguished by [Endpoint.IsUnix] is meaningful.
type Endpoint struct {
	// URL is the full http:// or https:// URL for HTTP endpoints.
	URL string
	// Path is the socket path for unix:// endpoints.
	Path string
}

// IsUnix reports whether the endpoint is a Unix domain socket.
func (e Endpoint) IsUnix() bool { return e.Path != "" }

func (e Endpoint) String() string {
	if e.IsUnix() {
		return "unix://" + e.Path
	}
	return e.URL
}

// Parse parses a client endpoint descriptor.
func Parse(s string) (Endpoint, error) {
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return Endpoint{URL: s}, nil
	case strings.HasPrefix(s, "unix://"):
		return Endpoint{Path: strings.TrimPrefix(s, "unix://")}, nil
	}
	return Endpoint{}, ErrUnsupportedScheme
}
