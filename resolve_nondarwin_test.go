// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !darwin

package binding_test

import (
	"errors"
	"testing"

	"go.astrophena.name/binding"
	"go.astrophena.name/binding/testutil"
)

// Named fd:// lookups consult LISTEN_FDNAMES everywhere except macOS, where
// they are delegated to launchd.
func TestResolveNamedDescriptor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		env     map[string]string
		want    binding.Binding
		wantErr error
	}{
		"found": {
			env: map[string]string{
				"LISTEN_FDNAMES": "other:service-name",
				"LISTEN_FDS":     "2",
			},
			want: binding.FileDescriptor(4),
		},
		"index beyond declared count": {
			env: map[string]string{
				"LISTEN_FDNAMES": "other:service-name",
				"LISTEN_FDS":     "1",
			},
			wantErr: binding.ErrDescriptorsMissing,
		},
		"name not present": {
			env: map[string]string{
				"LISTEN_FDNAMES": "other",
				"LISTEN_FDS":     "1",
			},
			wantErr: binding.ErrDescriptorsMissing,
		},
		"no activation": {
			wantErr: binding.ErrDescriptorsMissing,
		},
		"count not a number": {
			env: map[string]string{
				"LISTEN_FDNAMES": "service-name",
				"LISTEN_FDS":     "1a",
			},
			wantErr: binding.ErrBadDescriptor,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := resolve(t, "fd://service-name", tc.env)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got error %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}
