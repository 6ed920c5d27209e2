/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scratch

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/gravwell/scratch/log"
	"github.com/gravwell/scratch/utils/fs"
)

var (
	ErrPoolClosed = errors.New("Scratch pool is closed")
)

// defaultPoolPrefix names pool parents when the caller offers none.
const defaultPoolPrefix = `scratch`

// Pool owns a parent scratch directory and allocates child directories
// beneath it, so a single Close or Cleanup tears down everything a process
// produced. The parent's name embeds the owning PID as prefix-pid.suffix,
// which lets Sweep attribute leftovers from crashed processes to their
// dead owners.
//
// Unlike the single-shot Dir handle, a Pool tolerates repeated Close and
// Cleanup calls and may be shared between goroutines. An abandoned Pool is
// backstopped the same way as an abandoned Dir.
type Pool struct {
	mtx    sync.Mutex
	id     uuid.UUID
	dir    string // parent path, fixed for the life of the Pool
	parent *Dir
	closed bool
	lgr    log.Logger
}

// NewPool allocates a pool parent under the platform scratch root (see
// fs.TempDir). An empty prefix defaults to "scratch". lgr receives
// diagnostics from the paths that cannot report errors; a nil lgr drops
// them.
func NewPool(prefix string, lgr log.Logger) (*Pool, error) {
	return NewPoolIn(fs.TempDir(), prefix, lgr)
}

// NewPoolIn allocates a pool parent under root, with the same root
// handling as NewIn.
func NewPoolIn(root, prefix string, lgr log.Logger) (*Pool, error) {
	if prefix == `` {
		prefix = defaultPoolPrefix
	}
	if lgr == nil {
		lgr = log.NoLogger()
	}
	parent, err := NewIn(root, fmt.Sprintf("%s-%d", prefix, os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Pool{
		id:     uuid.New(),
		dir:    parent.Path(),
		parent: parent,
		lgr:    lgr,
	}, nil
}

// NewDir allocates a child scratch directory inside the pool. Children are
// ordinary handles; consuming one individually is fine, and whatever is
// left goes down with the pool.
func (p *Pool) NewDir(prefix string) (*Dir, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closed {
		return nil, ErrPoolClosed
	}
	return NewIn(p.dir, prefix)
}

// Path returns the pool parent directory. The value stays readable after
// Close for diagnostics, though the directory itself is gone by then.
func (p *Pool) Path() string {
	return p.dir
}

// ID returns the pool identity carried on its log entries.
func (p *Pool) ID() uuid.UUID {
	return p.id
}

// Close removes the pool tree and reports the removal error. Only the
// first call does the work; later calls return nil.
func (p *Pool) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.logLeftovers()
	return p.parent.Close()
}

// Cleanup removes the pool tree best-effort; failures go to the pool's
// logger instead of the caller. Like Close, only the first call acts.
func (p *Pool) Cleanup() {
	if p == nil {
		return
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.logLeftovers()
	if err := p.parent.Close(); err != nil {
		p.lgr.Error("failed to remove scratch pool",
			log.KV("pool", p.id), log.KV("path", p.dir), log.KVErr(err))
	}
}

// logLeftovers notes children that were never individually consumed before
// the pool went down. Callers hold the mutex.
func (p *Pool) logLeftovers() {
	ents, err := os.ReadDir(p.dir)
	if err != nil || len(ents) == 0 {
		return
	}
	p.lgr.Info("removing leftover scratch children",
		log.KV("pool", p.id), log.KV("path", p.dir), log.KV("children", len(ents)))
}
