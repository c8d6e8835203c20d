// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build linux

package activation

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"go.astrophena.name/binding/cli"
	"go.astrophena.name/binding/logger"
)

// Notify sends a message to the service manager using the sd_notify
// protocol. It does nothing when NOTIFY_SOCKET is not set.
func Notify(ctx context.Context, state State) {
	addr := &net.UnixAddr{
		Net:  "unixgram",
		Name: cli.GetEnv(ctx).Getenv("NOTIFY_SOCKET"),
	}

	if addr.Name == "" {
		// Not running under a service manager.
		return
	}

	conn, err := net.DialUnix(addr.Net, nil, addr)
	if err != nil {
		logger.Error(ctx, "sdnotify failed", slog.String("state", string(state)), slog.Any("err", err))
		return
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(state)); err != nil {
		logger.Error(ctx, "sdnotify failed", slog.String("state", string(state)), slog.Any("err", err))
	}
}

var watchdogStarted atomic.Bool

// Watchdog starts a watchdog keepalive goroutine that is stopped when ctx is
// canceled. When the watchdog is not enabled for the service, it does
// nothing.
func Watchdog(ctx context.Context) {
	if watchdogStarted.Load() {
		return
	}
	watchdogStarted.Store(true)

	interval := watchdogInterval(ctx)
	if interval > 0 {
		go func() {
			// Half the interval so a timeout is never missed.
			ticker := time.NewTicker(interval / 2)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					Notify(ctx, watchdog)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// watchdogInterval returns the watchdog interval configured in the service
// unit file.
func watchdogInterval(ctx context.Context) time.Duration {
	s, err := strconv.Atoi(cli.GetEnv(ctx).Getenv("WATCHDOG_USEC"))
	if err != nil {
		return 0
	}
	if s <= 0 {
		return 0
	}
	return time.Duration(s) * time.Microsecond
}
