// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package binding

import (
	"fmt"
	"net"
	"net/netip"
)

// Stream is an open client-side connection produced by [Dial].
//
// It is a closed set: the only implementations are [UnixStream], [TCPStream]
// and [PipeStream].
type Stream interface {
	stream()
}

// UnixStream is a connection to a Unix domain socket.
type UnixStream struct {
	*net.UnixConn
}

func (UnixStream) stream() {}

// TCPStream is a connection to a TCP socket.
type TCPStream struct {
	*net.TCPConn
}

func (TCPStream) stream() {}

// PipeStream carries a named pipe path. The connection itself is not opened
// here; on Windows, [PipeStream.Dial] opens it.
type PipeStream struct {
	Path string
}

func (PipeStream) stream() {}

// Dial materializes b into an open [Stream] in non-blocking mode.
//
// TCP address lists are tried in order and the first successful connection
// wins. Connect failures are returned verbatim from the OS; mechanisms the
// platform does not provide fail with [ErrUnsupportedScheme].
func Dial(b Binding) (Stream, error) {
	switch b := b.(type) {
	case FileDescriptor:
		return adoptStream(int(b))
	case FilePath:
		return dialPath(string(b))
	case Socket:
		return dialTCP([]netip.AddrPort{netip.AddrPort(b)})
	case Sockets:
		return dialTCP(b)
	case NamedPipe:
		return PipeStream{Path: string(b)}, nil
	}
	return nil, ErrUnsupportedScheme
}

func dialTCP(addrs []netip.AddrPort) (Stream, error) {
	var lastErr error
	for _, addr := range addrs {
		c, err := net.DialTCP("tcp", nil, net.TCPAddrFromAddrPort(addr))
		if err != nil {
			lastErr = err
			continue
		}
		if err := setNonblock(c); err != nil {
			c.Close()
			return nil, err
		}
		return TCPStream{c}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: empty address list", ErrBadAddress)
	}
	return nil, lastErr
}
