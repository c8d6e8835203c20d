// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package binding

import (
	"fmt"
	"net"
	"net/netip"
)

// Listener is an open server-side resource produced by [Listen].
//
// It is a closed set: the only implementations are [UnixListener],
// [TCPListener] and [PipeListener]. A Listener exclusively owns its
// underlying OS handle; closing it returns the handle to the OS.
type Listener interface {
	listener()
}

// UnixListener is a listener on a Unix domain socket.
type UnixListener struct {
	*net.UnixListener
}

func (UnixListener) listener() {}

// TCPListener is a listener on a TCP socket.
type TCPListener struct {
	*net.TCPListener
}

func (TCPListener) listener() {}

// PipeListener carries a named pipe path. The pipe itself is not opened
// here; on Windows, [PipeListener.Listen] opens it.
type PipeListener struct {
	Path string
}

func (PipeListener) listener() {}

// Listen materializes b into an open [Listener] in non-blocking mode.
//
// Unix socket paths are unlinked before binding, so two sequential binds to
// the same path both succeed. TCP address lists are tried in order and the
// first bindable address wins. Bind failures are returned verbatim from the
// OS; mechanisms the platform does not provide fail with
// [ErrUnsupportedScheme].
func Listen(b Binding) (Listener, error) {
	switch b := b.(type) {
	case FileDescriptor:
		return adoptListener(int(b))
	case FilePath:
		return listenPath(string(b))
	case Socket:
		return listenTCP([]netip.AddrPort{netip.AddrPort(b)})
	case Sockets:
		return listenTCP(b)
	case NamedPipe:
		return PipeListener{Path: string(b)}, nil
	}
	return nil, ErrUnsupportedScheme
}

func listenTCP(addrs []netip.AddrPort) (Listener, error) {
	var lastErr error
	for _, addr := range addrs {
		l, err := net.ListenTCP("tcp", net.TCPAddrFromAddrPort(addr))
		if err != nil {
			lastErr = err
			continue
		}
		if err := setNonblock(l); err != nil {
			l.Close()
			return nil, err
		}
		return TCPListener{l}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: empty address list", ErrBadAddress)
	}
	return nil, lastErr
}
