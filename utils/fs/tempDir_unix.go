//go:build unix && !android

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package fs

const (
	temporaryDirFallBack string = `/tmp`
)

// tempDirEnvs is the environment search order for the scratch root.
var tempDirEnvs = []string{`TMPDIR`}
