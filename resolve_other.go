// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !darwin

package binding

import (
	"context"
	"errors"
	"fmt"

	"go.astrophena.name/binding/activation"
)

func resolveNamedFD(ctx context.Context, name string) (Binding, error) {
	fd, err := activation.Named(ctx, name)
	if err != nil {
		if errors.Is(err, activation.ErrNoDescriptors) {
			return nil, ErrDescriptorsMissing
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDescriptor, err)
	}
	return FileDescriptor(fd), nil
}
