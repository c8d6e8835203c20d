// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build darwin && !cgo

package activation

import "errors"

// Launchd requires cgo to call launch_activate_socket.
func Launchd(name string) ([]int, error) {
	return nil, errors.New("activation: launchd lookup requires cgo")
}
