// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build windows

package main

import (
	"context"
	"net"

	"go.astrophena.name/binding"
)

func pipeListener(l binding.PipeListener) (net.Listener, error) {
	return l.Listen()
}

func pipeConn(ctx context.Context, s binding.PipeStream) (net.Conn, error) {
	return s.Dial(ctx)
}
