// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package binding

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"go.astrophena.name/binding/activation"
)

// Resolve parses a service binding descriptor into a [Binding].
//
// Dispatch is by literal prefix: fd://, unix://, npipe://, tcp:// and the
// bare \\ form for already-qualified pipe paths. The first matching prefix
// wins; anything else fails with [ErrUnsupportedScheme].
//
// Socket activation lookups (fd://) read LISTEN_FDS and LISTEN_FDNAMES from
// the environment carried by ctx (see [go.astrophena.name/binding/cli.GetEnv]).
// On macOS, named lookups are delegated to launchd instead. Hostname
// resolution for tcp:// descriptors also honors ctx.
func Resolve(ctx context.Context, s string) (Binding, error) {
	switch {
	case strings.HasPrefix(s, "fd://"):
		return resolveFD(ctx, strings.TrimPrefix(s, "fd://"))
	case strings.HasPrefix(s, "unix://"):
		return FilePath(strings.TrimPrefix(s, "unix://")), nil
	case strings.HasPrefix(s, "npipe://"):
		return normalizePipe(strings.TrimPrefix(s, "npipe://")), nil
	case strings.HasPrefix(s, "tcp://"):
		return resolveTCP(ctx, strings.TrimPrefix(s, "tcp://"))
	case strings.HasPrefix(s, `\\`):
		// Assumed already canonical, passed through unmodified.
		return NamedPipe(s), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, s)
}

func resolveFD(ctx context.Context, name string) (Binding, error) {
	if name == "" {
		n, err := activation.Count(ctx)
		if err != nil {
			if errors.Is(err, activation.ErrNoDescriptors) {
				return nil, ErrDescriptorsMissing
			}
			return nil, fmt.Errorf("%w: %v", ErrBadDescriptor, err)
		}
		// Only a single inherited socket is supported.
		if n != 1 {
			return nil, fmt.Errorf("%w: %d", ErrDescriptorOutOfRange, n)
		}
		return FileDescriptor(activation.ListenFDsStart), nil
	}

	// A numeric name is an explicit descriptor number and bypasses the
	// environment entirely.
	if fd, err := strconv.Atoi(name); err == nil {
		return FileDescriptor(fd), nil
	}

	return resolveNamedFD(ctx, name)
}

// normalizePipe turns the remainder of an npipe:// descriptor into a fully
// qualified pipe path. Anything starting with '.', '/' or '\' is treated as
// an absolute pipe path with forward slashes folded to backslashes;
// everything else is placed under \\.\pipe\.
func normalizePipe(rest string) NamedPipe {
	switch {
	case strings.HasPrefix(rest, "."), strings.HasPrefix(rest, "/"), strings.HasPrefix(rest, `\`):
		return NamedPipe(strings.ReplaceAll(rest, "/", `\`))
	}
	return NamedPipe(`\\.\pipe\` + rest)
}

func resolveTCP(ctx context.Context, rest string) (Binding, error) {
	// Literal ip:port needs no resolver round trip.
	if addr, err := netip.ParseAddrPort(rest); err == nil {
		return Socket(addr), nil
	}

	host, portStr, err := net.SplitHostPort(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAddress, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid port %q: %v", ErrBadAddress, portStr, err)
	}
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAddress, err)
	}

	// Order and duplicates from the resolver are preserved; they determine
	// the order in which addresses are tried at bind and connect time.
	addrs := make(Sockets, 0, len(ips))
	for _, ip := range ips {
		a, ok := netip.AddrFromSlice(ip.IP)
		if !ok {
			continue
		}
		a = a.Unmap()
		if ip.Zone != "" {
			a = a.WithZone(ip.Zone)
		}
		addrs = append(addrs, netip.AddrPortFrom(a, uint16(port)))
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: no usable addresses for %q", ErrBadAddress, host)
	}
	return addrs, nil
}
