// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package binding_test

import (
	"io"
	"net"
	"net/netip"
	"path/filepath"
	"testing"

	"go.astrophena.name/binding"
	"go.astrophena.name/binding/testutil"
)

// echo accepts a single connection and echoes everything back.
func echo(t *testing.T, l net.Listener) {
	t.Helper()
	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.Copy(conn, conn)
	}()
}

func TestDialUnixSocket(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.sock")
	l, err := binding.Listen(binding.FilePath(path))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	ul := l.(binding.UnixListener)
	defer ul.Close()
	echo(t, ul.UnixListener)

	s, err := binding.Dial(binding.FilePath(path))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	us, ok := s.(binding.UnixStream)
	if !ok {
		t.Fatalf("Dial = %T, want UnixStream", s)
	}
	defer us.Close()

	if _, err := us.Write([]byte("ping")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	us.CloseWrite()
	got, err := io.ReadAll(us)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	testutil.AssertEqual(t, string(got), "ping")
}

func TestDialTCP(t *testing.T) {
	t.Parallel()

	l, err := binding.Listen(binding.Socket(netip.MustParseAddrPort("127.0.0.1:0")))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	tl := l.(binding.TCPListener)
	defer tl.Close()
	echo(t, tl.TCPListener)

	addr := tl.Addr().(*net.TCPAddr).AddrPort()
	s, err := binding.Dial(binding.Socket(addr))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	ts, ok := s.(binding.TCPStream)
	if !ok {
		t.Fatalf("Dial = %T, want TCPStream", s)
	}
	defer ts.Close()

	if _, err := ts.Write([]byte("ping")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	ts.CloseWrite()
	got, err := io.ReadAll(ts)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	testutil.AssertEqual(t, string(got), "ping")
}

// Addresses are tried in list order; the first successful connection wins.
func TestDialSocketsOrder(t *testing.T) {
	t.Parallel()

	l, err := binding.Listen(binding.Socket(netip.MustParseAddrPort("127.0.0.1:0")))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	tl := l.(binding.TCPListener)
	defer tl.Close()
	echo(t, tl.TCPListener)

	good := tl.Addr().(*net.TCPAddr).AddrPort()
	addrs := binding.Sockets{
		netip.MustParseAddrPort("127.0.0.1:1"), // almost certainly refused
		good,
	}
	s, err := binding.Dial(addrs)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	ts := s.(binding.TCPStream)
	defer ts.Close()

	testutil.AssertEqual(t, ts.RemoteAddr().String(), tl.Addr().String())
}
