// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !unix

package binding

import "fmt"

// Descriptor adoption and Unix domain sockets need descriptor-table
// semantics the platform does not expose.

func adoptListener(fd int) (Listener, error) {
	return nil, fmt.Errorf("%w: file descriptor adoption", ErrUnsupportedScheme)
}

func listenPath(path string) (Listener, error) {
	return nil, fmt.Errorf("%w: unix domain sockets", ErrUnsupportedScheme)
}

func adoptStream(fd int) (Stream, error) {
	return nil, fmt.Errorf("%w: file descriptor adoption", ErrUnsupportedScheme)
}

func dialPath(path string) (Stream, error) {
	return nil, fmt.Errorf("%w: unix domain sockets", ErrUnsupportedScheme)
}
