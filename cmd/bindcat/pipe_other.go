// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !windows

package main

import (
	"context"
	"errors"
	"net"

	"go.astrophena.name/binding"
)

var errNoPipes = errors.New("bindcat: named pipes are only supported on Windows")

func pipeListener(l binding.PipeListener) (net.Listener, error) {
	return nil, errNoPipes
}

func pipeConn(ctx context.Context, s binding.PipeStream) (net.Conn, error) {
	return nil, errNoPipes
}
