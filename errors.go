// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package binding

import "errors"

// Errors returned by [Resolve]. Materialization errors from [Listen] and
// [Dial] are returned verbatim from the underlying OS calls and are not part
// of this set, with the exception of [ErrUnsupportedScheme] for mechanisms
// the platform does not provide.
var (
	// ErrBadAddress indicates that a tcp:// address literal was malformed
	// or a hostname could not be resolved. It wraps the underlying cause.
	ErrBadAddress = errors.New("binding: bad address")

	// ErrBadDescriptor indicates a non-numeric descriptor count or value.
	// It wraps the underlying parse error.
	ErrBadDescriptor = errors.New("binding: bad file descriptor")

	// ErrDescriptorOutOfRange indicates that socket activation declared or
	// returned a descriptor count other than the expected one. The message
	// carries the offending count.
	ErrDescriptorOutOfRange = errors.New("binding: descriptor count out of range")

	// ErrDescriptorsMissing indicates that no socket activation information
	// was available, or no descriptor matched the requested name.
	ErrDescriptorsMissing = errors.New("binding: no socket activation descriptors")

	// ErrUnsupportedScheme indicates an unrecognized descriptor prefix, or a
	// binding mechanism that is unavailable on this platform.
	ErrUnsupportedScheme = errors.New("binding: unsupported scheme")
)
