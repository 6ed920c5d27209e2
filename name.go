/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scratch

import (
	"math/rand/v2"
	"strings"
)

// suffixAlphabet is the candidate alphabet for the random portion of a
// directory name. 62 symbols at 12 characters is just under 72 bits of
// name space, far more than a squatter can cover inside the retry budget.
const suffixAlphabet = `ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789`

// numRandChars is how many random characters go into every directory name.
const numRandChars = 12

// randomSuffix returns n characters drawn uniformly from suffixAlphabet.
func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}

func isSuffixByte(c byte) bool {
	return strings.IndexByte(suffixAlphabet, c) >= 0
}
