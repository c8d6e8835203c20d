// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package activation implements the socket activation side of service binding:
looking up descriptors inherited from a service manager and reporting service
state back to it.

Descriptor lookups follow the systemd convention: LISTEN_FDS declares how
many descriptors were passed, LISTEN_FDNAMES names them positionally, and
numbering starts at [ListenFDsStart]. On macOS, [Launchd] asks launchd for
sockets registered in the service's plist instead.

All environment reads go through [go.astrophena.name/binding/cli.GetEnv].
*/
package activation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.astrophena.name/binding/cli"
)

// ListenFDsStart is the first descriptor number used for inherited sockets,
// immediately after stdin, stdout and stderr.
const ListenFDsStart = 3

// ErrNoDescriptors indicates that the service manager passed no activation
// descriptors, or none matched the requested name.
var ErrNoDescriptors = errors.New("activation: no descriptors")

// Count reports how many descriptors the service manager passed to this
// process. It returns ErrNoDescriptors if LISTEN_FDS is not set.
func Count(ctx context.Context) (int, error) {
	fds := cli.GetEnv(ctx).Getenv("LISTEN_FDS")
	if fds == "" {
		return 0, ErrNoDescriptors
	}
	n, err := strconv.Atoi(fds)
	if err != nil {
		return 0, fmt.Errorf("activation: invalid LISTEN_FDS: %w", err)
	}
	return n, nil
}

// Named returns the descriptor number of the inherited socket with the given
// name, looked up positionally in the LISTEN_FDNAMES table.
//
// A name only matches if its index is within the count declared by
// LISTEN_FDS. Missing variables or an unmatched name return
// ErrNoDescriptors.
func Named(ctx context.Context, name string) (int, error) {
	env := cli.GetEnv(ctx)

	names := env.Getenv("LISTEN_FDNAMES")
	fds := env.Getenv("LISTEN_FDS")
	if names == "" || fds == "" {
		return 0, ErrNoDescriptors
	}
	n, err := strconv.Atoi(fds)
	if err != nil {
		return 0, fmt.Errorf("activation: invalid LISTEN_FDS: %w", err)
	}
	for i, fdName := range strings.Split(names, ":") {
		if fdName == name && i < n {
			return ListenFDsStart + i, nil
		}
	}
	return 0, ErrNoDescriptors
}
