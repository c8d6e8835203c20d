// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package binding resolves textual service binding descriptors into open
network resources.

A descriptor is a URI-like string naming one of four binding mechanisms:

  - fd://[name-or-number] — a file descriptor inherited through socket
    activation (systemd on Linux, launchd on macOS);
  - unix://path — a Unix domain socket at path;
  - tcp://host:port — a TCP socket, with hostname resolution;
  - npipe://name (or a literal \\ path) — a Windows named pipe.

Resolution happens in two stages. [Resolve] parses a descriptor into a
[Binding], a value describing intent that can be inspected, compared and
logged without touching the network. [Listen] and [Dial] then materialize a
Binding into an open [Listener] or [Stream].

Socket activation lookups read the process environment through
[go.astrophena.name/binding/cli.GetEnv], so tests can substitute their own
environment instead of mutating the real one.
*/
package binding

import (
	"fmt"
	"net/netip"
	"strings"
)

// Binding describes the mechanism a service should use to bind its listener
// or open its client connection.
//
// It is a closed set: the only implementations are [FileDescriptor],
// [FilePath], [Socket], [Sockets] and [NamedPipe]. A Binding carries no open
// resource and is safe to copy and log.
type Binding interface {
	fmt.Stringer

	binding()
}

// FileDescriptor is an already-open descriptor number inherited from a
// parent process via socket activation.
type FileDescriptor int

func (FileDescriptor) binding() {}

func (fd FileDescriptor) String() string { return fmt.Sprintf("fd://%d", int(fd)) }

// FilePath is a filesystem path at which a Unix domain socket should be
// created (servers) or found (clients).
type FilePath string

func (FilePath) binding() {}

func (p FilePath) String() string { return "unix://" + string(p) }

// Socket is a single resolved TCP endpoint.
type Socket netip.AddrPort

func (Socket) binding() {}

func (s Socket) String() string { return "tcp://" + netip.AddrPort(s).String() }

// Addr returns the endpoint as a [netip.AddrPort].
func (s Socket) Addr() netip.AddrPort { return netip.AddrPort(s) }

// Sockets is an ordered list of resolved TCP endpoints. It arises when a
// hostname resolves to multiple addresses; the list preserves resolver order
// and is tried in that order at bind and connect time.
type Sockets []netip.AddrPort

func (Sockets) binding() {}

func (s Sockets) String() string {
	addrs := make([]string, len(s))
	for i, a := range s {
		addrs[i] = a.String()
	}
	return "tcp://" + strings.Join(addrs, ",")
}

// NamedPipe is a fully qualified Windows named pipe path in the canonical
// \\.\pipe\name form (or a literal absolute pipe path).
type NamedPipe string

func (NamedPipe) binding() {}

func (p NamedPipe) String() string { return string(p) }
