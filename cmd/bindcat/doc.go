// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Bindcat resolves a service binding descriptor and copies data between the
resulting socket and its standard streams, netcat-style.

Usage:

	bindcat [flags] <descriptor>

In connect mode (the default), bindcat dials the descriptor, writes standard
input to the connection and prints whatever the peer sends to standard
output. With the -l flag it listens on the descriptor instead, accepts a
single connection and relays it the same way.

Descriptors take the forms understood by the binding package:

	fd://[name-or-number]
	unix://path
	tcp://host:port
	npipe://name

When listening under a service manager, bindcat reports readiness via
sd-notify.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/binding/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
