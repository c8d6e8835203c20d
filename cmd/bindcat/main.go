// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"

	"go.astrophena.name/binding"
	"go.astrophena.name/binding/activation"
	"go.astrophena.name/binding/cli"
	"go.astrophena.name/binding/logger"
)

func main() { cli.Main(new(bindcat)) }

type bindcat struct {
	listen bool
}

func (b *bindcat) Flags(f *flag.FlagSet) {
	f.BoolVar(&b.listen, "l", false, "Listen on the descriptor instead of connecting to it.")
}

func (b *bindcat) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 1 {
		return fmt.Errorf("%w: usage: bindcat [flags] <descriptor>", cli.ErrInvalidArgs)
	}
	ctx = logger.Put(ctx, slog.New(logger.NewHandler(env.Stderr)))

	bind, err := binding.Resolve(ctx, env.Args[0])
	if err != nil {
		return err
	}
	logger.Debug(ctx, "resolved descriptor", slog.String("binding", bind.String()))

	if b.listen {
		return b.serve(ctx, bind)
	}
	return b.connect(ctx, bind)
}

func (b *bindcat) serve(ctx context.Context, bind binding.Binding) error {
	l, err := binding.Listen(bind)
	if err != nil {
		return err
	}
	nl, err := netListener(l)
	if err != nil {
		return err
	}
	defer nl.Close()

	// Unblocks Accept when the context is canceled.
	stop := context.AfterFunc(ctx, func() { nl.Close() })
	defer stop()

	activation.Notify(ctx, activation.Ready)
	activation.Watchdog(ctx)
	logger.Info(ctx, "listening", slog.String("binding", bind.String()))

	conn, err := nl.Accept()
	if err != nil {
		if ctx.Err() != nil {
			activation.Notify(ctx, activation.Stopping)
			return nil
		}
		return err
	}
	defer conn.Close()
	logger.Info(ctx, "accepted connection", slog.String("remote", remoteAddr(conn)))

	err = relay(ctx, conn)
	activation.Notify(ctx, activation.Stopping)
	return err
}

func (b *bindcat) connect(ctx context.Context, bind binding.Binding) error {
	s, err := binding.Dial(bind)
	if err != nil {
		return err
	}
	conn, err := netConn(ctx, s)
	if err != nil {
		return err
	}
	defer conn.Close()
	logger.Info(ctx, "connected", slog.String("remote", remoteAddr(conn)))

	return relay(ctx, conn)
}

// relay copies the connection to stdout and stdin to the connection,
// finishing when the peer closes its side or the context is canceled.
func relay(ctx context.Context, conn net.Conn) error {
	env := cli.GetEnv(ctx)

	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(env.Stdout, conn)
		done <- err
	}()
	go func() {
		io.Copy(conn, env.Stdin)
		// Signal EOF to the peer, keep reading its side.
		if cw, ok := conn.(interface{ CloseWrite() error }); ok {
			cw.CloseWrite()
		}
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}

func netListener(l binding.Listener) (net.Listener, error) {
	switch l := l.(type) {
	case binding.UnixListener:
		return l.UnixListener, nil
	case binding.TCPListener:
		return l.TCPListener, nil
	case binding.PipeListener:
		return pipeListener(l)
	}
	return nil, fmt.Errorf("bindcat: unsupported listener %T", l)
}

func netConn(ctx context.Context, s binding.Stream) (net.Conn, error) {
	switch s := s.(type) {
	case binding.UnixStream:
		return s.UnixConn, nil
	case binding.TCPStream:
		return s.TCPConn, nil
	case binding.PipeStream:
		return pipeConn(ctx, s)
	}
	return nil, fmt.Errorf("bindcat: unsupported stream %T", s)
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return "unknown"
}
