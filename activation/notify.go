// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package activation

// State represents an sd-notify state.
// See https://www.freedesktop.org/software/systemd/man/latest/sd_notify.html
// for all possible values.
type State string

const (
	// Ready tells the service manager that service startup is finished.
	Ready State = "READY=1"

	// Stopping tells the service manager that the service is stopping.
	Stopping State = "STOPPING=1"

	// Reloading tells the service manager that the service is reloading
	// its configuration.
	Reloading State = "RELOADING=1"

	// watchdog tells the service manager to update the watchdog timestamp.
	watchdog State = "WATCHDOG=1"
)

// Status returns a State carrying free-form status text for the service
// manager to display.
func Status(status string) State {
	return State("STATUS=" + status)
}
