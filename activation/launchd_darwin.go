// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build darwin && cgo

package activation

/*
#include <stdlib.h>
#include <launch.h>
*/
import "C"

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Launchd asks launchd for the sockets registered under name in the
// service's launchd.plist and returns their descriptor numbers.
func Launchd(name string) ([]int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var (
		fds *C.int
		cnt C.size_t
	)
	if rc := C.launch_activate_socket(cname, &fds, &cnt); rc != 0 {
		return nil, fmt.Errorf("activation: launch_activate_socket %q: %v", name, syscall.Errno(rc))
	}
	defer C.free(unsafe.Pointer(fds))

	out := make([]int, 0, int(cnt))
	for _, fd := range unsafe.Slice(fds, int(cnt)) {
		out = append(out, int(fd))
	}
	return out, nil
}
