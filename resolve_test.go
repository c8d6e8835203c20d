// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package binding_test

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"strings"
	"testing"

	"go.astrophena.name/binding"
	"go.astrophena.name/binding/cli"
	"go.astrophena.name/binding/testutil"
)

func mustAddrPort(t *testing.T, s string) netip.AddrPort {
	t.Helper()
	addr, err := netip.ParseAddrPort(s)
	if err != nil {
		t.Fatalf("ParseAddrPort(%q): %v", s, err)
	}
	return addr
}

// resolve runs Resolve against a fake environment, so tests never touch the
// real process environment.
func resolve(t *testing.T, descriptor string, vars map[string]string) (binding.Binding, error) {
	t.Helper()
	env := &cli.Env{
		Getenv: func(key string) string { return vars[key] },
		Stdin:  strings.NewReader(""),
		Stdout: io.Discard,
		Stderr: io.Discard,
	}
	return binding.Resolve(cli.WithEnv(context.Background(), env), descriptor)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		descriptor string
		env        map[string]string
		want       binding.Binding
		wantErr    error
	}{
		"tcp literal": {
			descriptor: "tcp://127.0.0.1:8080",
			want:       binding.Socket(mustAddrPort(t, "127.0.0.1:8080")),
		},
		"tcp literal IPv6": {
			descriptor: "tcp://[::1]:9090",
			want:       binding.Socket(mustAddrPort(t, "[::1]:9090")),
		},
		"tcp empty host": {
			descriptor: "tcp://:8080",
			wantErr:    binding.ErrBadAddress,
		},
		"tcp no port": {
			descriptor: "tcp://127.0.0.1",
			wantErr:    binding.ErrBadAddress,
		},
		"tcp bad port": {
			descriptor: "tcp://127.0.0.1:http",
			wantErr:    binding.ErrBadAddress,
		},
		"unix": {
			descriptor: "unix:///tmp/test",
			want:       binding.FilePath("/tmp/test"),
		},
		"npipe short": {
			descriptor: "npipe://test",
			want:       binding.NamedPipe(`\\.\pipe\test`),
		},
		"npipe long": {
			descriptor: "npipe:////./pipe/test",
			want:       binding.NamedPipe(`\\.\pipe\test`),
		},
		"npipe dotted": {
			descriptor: `npipe://./pipe/test`,
			want:       binding.NamedPipe(`.\pipe\test`),
		},
		"bare pipe path": {
			descriptor: `\\.\pipe\test`,
			want:       binding.NamedPipe(`\\.\pipe\test`),
		},
		"single backslash": {
			descriptor: `\test`,
			wantErr:    binding.ErrUnsupportedScheme,
		},
		"unknown scheme": {
			descriptor: "unknown://test",
			wantErr:    binding.ErrUnsupportedScheme,
		},
		"fd explicit": {
			descriptor: "fd://56",
			want:       binding.FileDescriptor(56),
		},
		"fd from activation": {
			descriptor: "fd://",
			env:        map[string]string{"LISTEN_FDS": "1"},
			want:       binding.FileDescriptor(3),
		},
		"fd zero descriptors": {
			descriptor: "fd://",
			env:        map[string]string{"LISTEN_FDS": "0"},
			wantErr:    binding.ErrDescriptorOutOfRange,
		},
		"fd two descriptors": {
			descriptor: "fd://",
			env:        map[string]string{"LISTEN_FDS": "2"},
			wantErr:    binding.ErrDescriptorOutOfRange,
		},
		"fd too many descriptors": {
			descriptor: "fd://",
			env:        map[string]string{"LISTEN_FDS": "3"},
			wantErr:    binding.ErrDescriptorOutOfRange,
		},
		"fd count not a number": {
			descriptor: "fd://",
			env:        map[string]string{"LISTEN_FDS": "3a"},
			wantErr:    binding.ErrBadDescriptor,
		},
		"fd no activation": {
			descriptor: "fd://",
			wantErr:    binding.ErrDescriptorsMissing,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := resolve(t, tc.descriptor, tc.env)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Resolve(%q) = %v, want %v", tc.descriptor, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.descriptor, err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestSocketRoundTrip(t *testing.T) {
	t.Parallel()

	for _, addr := range []string{"127.0.0.1:8080", "[::1]:9090", "192.0.2.7:1"} {
		got, err := resolve(t, "tcp://"+addr, nil)
		if err != nil {
			t.Fatalf("Resolve(tcp://%s): %v", addr, err)
		}
		sock, ok := got.(binding.Socket)
		if !ok {
			t.Fatalf("Resolve(tcp://%s) = %T, want Socket", addr, got)
		}
		testutil.AssertEqual(t, sock.Addr().String(), addr)
	}
}

func TestResolveLocalhost(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, "tcp://localhost:8081", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	addrs, ok := got.(binding.Sockets)
	if !ok {
		t.Fatalf("got %T, want Sockets", got)
	}
	if len(addrs) == 0 {
		t.Fatal("no addresses for localhost")
	}
	for _, a := range addrs {
		if !a.Addr().IsLoopback() {
			t.Errorf("%s is not a loopback address", a)
		}
		testutil.AssertEqual(t, a.Port(), uint16(8081))
	}
}

func TestBindingString(t *testing.T) {
	t.Parallel()

	cases := map[binding.Binding]string{
		binding.FileDescriptor(3):       "fd://3",
		binding.FilePath("/tmp/test"):   "unix:///tmp/test",
		binding.NamedPipe(`\\.\pipe\t`): `\\.\pipe\t`,
		binding.Socket(mustAddrPort(t, "127.0.0.1:80")): "tcp://127.0.0.1:80",
	}
	for b, want := range cases {
		testutil.AssertEqual(t, b.String(), want)
	}
}
