// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package binding

import (
	"fmt"
	"net"
	"os"
)

func adoptListener(fd int) (Listener, error) {
	// net.FileListener dups the descriptor, so the adopted file can be
	// closed right away.
	f := os.NewFile(uintptr(fd), "listener")
	if f == nil {
		return nil, fmt.Errorf("%w: %d", ErrBadDescriptor, fd)
	}
	defer f.Close()

	l, err := net.FileListener(f)
	if err != nil {
		return nil, err
	}
	switch l := l.(type) {
	case *net.UnixListener:
		if err := setNonblock(l); err != nil {
			l.Close()
			return nil, err
		}
		return UnixListener{l}, nil
	case *net.TCPListener:
		if err := setNonblock(l); err != nil {
			l.Close()
			return nil, err
		}
		return TCPListener{l}, nil
	}
	l.Close()
	return nil, fmt.Errorf("%w: descriptor %d is not a stream socket", ErrUnsupportedScheme, fd)
}

func listenPath(path string) (Listener, error) {
	// The path may legitimately not exist; a leftover socket file from a
	// previous listener is removed here, not on close.
	os.Remove(path)

	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, err
	}
	l.SetUnlinkOnClose(false)
	if err := setNonblock(l); err != nil {
		l.Close()
		return nil, err
	}
	return UnixListener{l}, nil
}

func adoptStream(fd int) (Stream, error) {
	f := os.NewFile(uintptr(fd), "stream")
	if f == nil {
		return nil, fmt.Errorf("%w: %d", ErrBadDescriptor, fd)
	}
	defer f.Close()

	c, err := net.FileConn(f)
	if err != nil {
		return nil, err
	}
	switch c := c.(type) {
	case *net.UnixConn:
		if err := setNonblock(c); err != nil {
			c.Close()
			return nil, err
		}
		return UnixStream{c}, nil
	case *net.TCPConn:
		if err := setNonblock(c); err != nil {
			c.Close()
			return nil, err
		}
		return TCPStream{c}, nil
	}
	c.Close()
	return nil, fmt.Errorf("%w: descriptor %d is not a stream socket", ErrUnsupportedScheme, fd)
}

func dialPath(path string) (Stream, error) {
	c, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, err
	}
	if err := setNonblock(c); err != nil {
		c.Close()
		return nil, err
	}
	return UnixStream{c}, nil
}
