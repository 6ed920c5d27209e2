//go:build android

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package fs

// Android has no shared temp area (scratch space is normally allocated
// per-app), so fall back to the shell-accessible local tmp directory.
const (
	temporaryDirFallBack string = `/data/local/tmp`
)

var tempDirEnvs = []string{`TMPDIR`}
