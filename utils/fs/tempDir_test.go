/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package fs

import (
	"testing"
)

func TestTempDirDefault(t *testing.T) {
	// a variable holding the empty string must be treated as absent
	for _, ev := range tempDirEnvs {
		t.Setenv(ev, ``)
	}
	if d := TempDir(); d != temporaryDirFallBack {
		t.Fatalf("expected fallback %q, got %q", temporaryDirFallBack, d)
	}
}

func TestTempDirPriority(t *testing.T) {
	for _, ev := range tempDirEnvs {
		t.Setenv(ev, ``)
	}
	// populate from the bottom of the list up, each higher priority
	// variable must take over as soon as it gets a value
	for i := len(tempDirEnvs) - 1; i >= 0; i-- {
		want := `/scratch-root-` + tempDirEnvs[i]
		t.Setenv(tempDirEnvs[i], want)
		if d := TempDir(); d != want {
			t.Fatalf("%s set: expected %q, got %q", tempDirEnvs[i], want, d)
		}
	}
}

func TestTempDirNotCached(t *testing.T) {
	for _, ev := range tempDirEnvs {
		t.Setenv(ev, ``)
	}
	t.Setenv(tempDirEnvs[0], `/scratch-first`)
	if d := TempDir(); d != `/scratch-first` {
		t.Fatalf("expected /scratch-first, got %q", d)
	}
	t.Setenv(tempDirEnvs[0], `/scratch-second`)
	if d := TempDir(); d != `/scratch-second` {
		t.Fatalf("environment change not observed, got %q", d)
	}
}
