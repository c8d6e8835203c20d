// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package binding

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// nonblockAttempts bounds the retry loop for transient fcntl failures.
const nonblockAttempts = 10

// setNonblock forces the descriptor behind c into non-blocking mode.
// EAGAIN from the fcntl call itself is retried a bounded number of times;
// any other failure is returned so the caller can decide whether a blocking
// handle is acceptable.
func setNonblock(c syscall.Conn) error {
	rc, err := c.SyscallConn()
	if err != nil {
		return err
	}
	var setErr error
	if err := rc.Control(func(fd uintptr) {
		for range nonblockAttempts {
			setErr = unix.SetNonblock(int(fd), true)
			if errors.Is(setErr, unix.EAGAIN) {
				continue
			}
			return
		}
	}); err != nil {
		return err
	}
	return setErr
}
