/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scratch

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/process"

	"github.com/gravwell/scratch/log"
)

// pidExists reports owner liveness; a testing hook so sweeps can be
// exercised without spawning and killing real processes.
var pidExists = process.PidExists

// Sweep scans root for pool parents left behind by processes that are no
// longer running and removes them. Only directories named exactly like a
// pool parent (prefix-pid.suffix) are considered, and only when the
// embedded pid no longer maps to a live process; everything else under
// root is left alone. An empty prefix means the default pool prefix.
//
// Sweep returns the number of directories removed and the first removal
// error encountered; it keeps sweeping past individual failures, logging
// per-entry outcomes to lgr. Losing a removal race against an owner's own
// cleanup is benign, removing an already-missing tree counts as success.
func Sweep(root, prefix string, lgr log.Logger) (int, error) {
	if prefix == `` {
		prefix = defaultPoolPrefix
	}
	if lgr == nil {
		lgr = log.NoLogger()
	}
	ents, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}
	var removed int
	var firstErr error
	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}
		pid, ok := parsePoolLeaf(ent.Name(), prefix)
		if !ok {
			continue
		}
		p := filepath.Join(root, ent.Name())
		alive, err := pidExists(pid)
		if err != nil {
			// cannot prove the owner is gone, leave it be
			lgr.Warn("could not check scratch pool owner",
				log.KV("path", p), log.KV("pid", pid), log.KVErr(err))
			continue
		}
		if alive {
			lgr.Info("skipping scratch pool, owner is alive",
				log.KV("path", p), log.KV("pid", pid))
			continue
		}
		if err := removeAll(p); err != nil {
			lgr.Error("failed to remove stale scratch pool",
				log.KV("path", p), log.KV("pid", pid), log.KVErr(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed++
		lgr.Info("removed stale scratch pool",
			log.KV("path", p), log.KV("pid", pid))
	}
	return removed, firstErr
}

// parsePoolLeaf matches a directory name against the pool parent form
// prefix-pid.suffix and returns the embedded pid. The match is strict
// about the suffix length and alphabet, so nothing gets treated as a pool
// parent unless an allocator here made it.
func parsePoolLeaf(name, prefix string) (int32, bool) {
	rest, ok := strings.CutPrefix(name, prefix+`-`)
	if !ok {
		return 0, false
	}
	pidStr, suffix, ok := strings.Cut(rest, `.`)
	if !ok || len(suffix) != numRandChars {
		return 0, false
	}
	for i := 0; i < len(suffix); i++ {
		if !isSuffixByte(suffix[i]) {
			return 0, false
		}
	}
	pid, err := strconv.ParseInt(pidStr, 10, 32)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return int32(pid), true
}
