/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package fs provides utilities related to the OS file system.
package fs

import (
	"os"
)

// TempDir returns the base directory under which scratch directories are
// allocated.
//
// The lookup walks a platform-specific priority list of environment
// variables and takes the first with a non-empty value; a variable set to
// the empty string is treated the same as one that is absent. When no
// variable matches, a hardcoded platform default is returned.
//
// On Unix-based systems (Linux, macOS) the list is just TMPDIR with /tmp as
// the default. Android has no shared temp area, so the default there is
// /data/local/tmp. On Windows the list is TMP, TEMP, USERPROFILE, and
// WINDIR, defaulting to C:\Windows.
//
// The environment is consulted on every call, nothing is cached at init, so
// a process that changes TMPDIR between allocations sees the change on the
// next call.
func TempDir() string {
	for _, ev := range tempDirEnvs {
		if v := os.Getenv(ev); v != `` {
			return v
		}
	}
	return temporaryDirFallBack
}
