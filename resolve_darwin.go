// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build darwin

package binding

import (
	"context"
	"fmt"

	"go.astrophena.name/binding/activation"
)

// On macOS, non-numeric fd:// names are looked up in launchd instead of the
// LISTEN_FDNAMES table.
func resolveNamedFD(ctx context.Context, name string) (Binding, error) {
	fds, err := activation.Launchd(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptorsMissing, err)
	}
	if len(fds) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrDescriptorOutOfRange, len(fds))
	}
	return FileDescriptor(fds[0]), nil
}
