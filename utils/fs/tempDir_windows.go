//go:build windows

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package fs

const (
	temporaryDirFallBack string = `C:\Windows`
)

// tempDirEnvs is the environment search order for the scratch root. The
// windows install root sits last so a user or session override always wins.
var tempDirEnvs = []string{`TMP`, `TEMP`, `USERPROFILE`, `WINDIR`}
