// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build windows

package binding

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func setNonblock(c syscall.Conn) error {
	rc, err := c.SyscallConn()
	if err != nil {
		return err
	}
	var setErr error
	if err := rc.Control(func(fd uintptr) {
		setErr = windows.SetNonblock(windows.Handle(fd), true)
	}); err != nil {
		return err
	}
	return setErr
}
