/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package scratch implements collision resistant allocation of uniquely
// named temporary directories, tying each directory's lifetime to an owning
// handle with deterministic and best-effort removal paths.
package scratch

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gravwell/scratch/utils/fs"
)

var (
	// ErrExhausted is returned when the retry budget runs out without
	// finding a free name. Random suffixes make that astronomically
	// unlikely to happen on its own; seeing it means something else on
	// the system is grabbing our candidate names on purpose.
	ErrExhausted = errors.New("Exhausted retries allocating scratch directory")
)

// DirPerm is the permission set on allocated scratch directories.
const DirPerm = 0700

// maxRetries bounds the allocation loop: large enough that a squatter runs
// out of luck long before the budget does, small enough that the loop is
// guaranteed to terminate.
var maxRetries int64 = 1 << 31

// testing hooks, swapped to simulate collision storms and removal failures
// without a cooperating filesystem
var (
	mkdir     = os.Mkdir
	removeAll = os.RemoveAll
)

type dirState int

const (
	stateEmpty dirState = iota // zero value, never allocated
	stateOwning
	stateConsumed
)

// Dir is the owning handle for one allocated scratch directory. A Dir
// starts out owning its directory and is consumed exactly once by Detach,
// Close, or Cleanup; using a consumed or zero value Dir is a programming
// error and panics.
//
// A Dir may be handed between goroutines, but only one goroutine may use it
// at a time; there is no internal locking.
//
// Should an unconsumed Dir become unreachable, a runtime cleanup removes
// the directory as a backstop. Hold the Dir itself, not just the string
// returned by Path, for as long as the directory is in use.
type Dir struct {
	path  string
	state dirState
	reap  runtime.Cleanup
}

func newDir(path string) *Dir {
	d := &Dir{
		path:  path,
		state: stateOwning,
	}
	// best-effort removal for handles dropped without Detach or Close
	d.reap = runtime.AddCleanup(d, func(p string) { removeAll(p) }, path)
	return d
}

// New allocates a uniquely named directory under the platform scratch root
// (see fs.TempDir) and returns its owning handle. When prefix is non-empty
// the directory name is the prefix, a dot, and a random suffix; with an
// empty prefix the name is the bare suffix.
func New(prefix string) (*Dir, error) {
	return NewIn(fs.TempDir(), prefix)
}

// NewIn allocates a uniquely named directory under root. A relative root is
// resolved against the current working directory first; failure to resolve
// it is returned as is. Creation is a single mkdir, so a missing root is an
// error, never implicitly created.
//
// Collisions with existing names are resolved by retrying with fresh random
// suffixes: concurrent allocations under the same root with the same prefix
// always end up in distinct directories. Any creation failure other than a
// collision aborts the loop immediately.
func NewIn(root, prefix string) (*Dir, error) {
	if !filepath.IsAbs(root) {
		var err error
		if root, err = filepath.Abs(root); err != nil {
			return nil, err
		}
	}
	for i := int64(0); i < maxRetries; i++ {
		// bare suffix when the prefix is empty; gluing the dot onto
		// an empty prefix would make a dot-leading name, which
		// renders as hidden on some systems
		leaf := randomSuffix(numRandChars)
		if prefix != `` {
			leaf = prefix + `.` + leaf
		}
		p := filepath.Join(root, leaf)
		if err := mkdir(p, DirPerm); err != nil {
			if errors.Is(err, os.ErrExist) {
				continue
			}
			return nil, err
		}
		return newDir(p), nil
	}
	return nil, ErrExhausted
}

// With allocates a directory under the platform scratch root, runs fn with
// its path, and removes the directory best-effort before returning, whether
// fn returns normally or panics. fn's error comes back unchanged.
func With(prefix string, fn func(dir string) error) error {
	d, err := New(prefix)
	if err != nil {
		return err
	}
	defer d.Cleanup()
	return fn(d.Path())
}

// Path returns the absolute path of the owned directory. It panics on a
// consumed handle: access after Detach or Close is a logic error, not a
// recoverable condition.
func (d *Dir) Path() string {
	if d.state != stateOwning {
		panic(d.statePanic())
	}
	return d.path
}

// Detach consumes the handle and hands the directory's lifetime over to
// the caller; no removal of any kind runs afterwards.
func (d *Dir) Detach() string {
	return d.take()
}

// Close consumes the handle and recursively removes the directory and its
// contents. This is the one removal path that reports failures; use it
// when a leftover scratch tree matters.
func (d *Dir) Close() error {
	return removeAll(d.take())
}

// Cleanup consumes the handle and removes the directory, discarding any
// removal failure. Unlike Detach and Close it is a no-op on an already
// consumed or nil handle, so it can sit in a defer and run on every exit
// path, including panics, without ever raising itself.
func (d *Dir) Cleanup() {
	if d == nil || d.state != stateOwning {
		return
	}
	d.state = stateConsumed
	d.reap.Stop()
	removeAll(d.path)
}

// take transitions Owning to Consumed and returns the owned path.
func (d *Dir) take() string {
	if d.state != stateOwning {
		panic(d.statePanic())
	}
	d.state = stateConsumed
	d.reap.Stop()
	return d.path
}

func (d *Dir) statePanic() string {
	if d.state == stateConsumed {
		return `scratch: use of consumed Dir`
	}
	return `scratch: use of zero value Dir`
}
