// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !unix && !windows

package binding

import "syscall"

// The runtime network poller already keeps sockets non-blocking here and
// there is no raw descriptor to toggle.
func setNonblock(c syscall.Conn) error { return nil }
