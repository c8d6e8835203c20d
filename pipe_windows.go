// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build windows

package binding

import (
	"context"
	"net"

	"github.com/Microsoft/go-winio"
)

// Listen opens the named pipe server for the carried path.
func (p PipeListener) Listen() (net.Listener, error) {
	return winio.ListenPipe(p.Path, nil)
}

// Dial connects to the named pipe at the carried path.
func (p PipeStream) Dial(ctx context.Context) (net.Conn, error) {
	return winio.DialPipeContext(ctx, p.Path)
}
