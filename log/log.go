/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package log implements the small leveled logging layer used by scratch
// components that swallow errors instead of returning them.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

type Level int

const (
	OFF Level = iota
	INFO
	WARN
	ERROR
)

// DefaultDepth is the runtime.Caller skip distance from an entry method to
// its caller; the non-depth methods use it so the reported callsite lands
// on user code.
const DefaultDepth = 3

var (
	ErrInvalidLevel = errors.New("invalid logging level")
)

func (l Level) String() string {
	switch l {
	case OFF:
		return `OFF`
	case INFO:
		return `INFO`
	case WARN:
		return `WARN`
	case ERROR:
		return `ERROR`
	}
	return `UNKNOWN`
}

func (l Level) valid() bool {
	return l >= OFF && l <= ERROR
}

// Logger is the sink for diagnostics out of components whose contract does
// not let them return an error, such as best-effort cleanup paths. The
// structured variants carry rfc5424 SDParam pairs, typically built with KV
// and KVErr.
type Logger interface {
	Errorf(format string, args ...interface{}) error
	Warnf(format string, args ...interface{}) error
	Infof(format string, args ...interface{}) error
	ErrorfWithDepth(depth int, format string, args ...interface{}) error
	WarnfWithDepth(depth int, format string, args ...interface{}) error
	InfofWithDepth(depth int, format string, args ...interface{}) error
	Error(msg string, args ...rfc5424.SDParam) error
	Warn(msg string, args ...rfc5424.SDParam) error
	Info(msg string, args ...rfc5424.SDParam) error
	ErrorWithDepth(depth int, msg string, args ...rfc5424.SDParam) error
	WarnWithDepth(depth int, msg string, args ...rfc5424.SDParam) error
	InfoWithDepth(depth int, msg string, args ...rfc5424.SDParam) error
	Hostname() string
	Appname() string
}

// KV packs a name/value pair for the structured logging methods.
func KV(name string, value interface{}) rfc5424.SDParam {
	return rfc5424.SDParam{Name: name, Value: fmt.Sprintf("%v", value)}
}

// KVErr packs an error under the standard "error" name.
func KVErr(err error) rfc5424.SDParam {
	return KV(`error`, err)
}

// WriterLogger is a Logger that writes line oriented entries to a writer,
// filtering by level. It is safe for concurrent use.
type WriterLogger struct {
	mtx      sync.Mutex
	wtr      io.Writer
	lvl      Level
	hostname string
	appname  string
}

// New returns a WriterLogger pushing entries at INFO and above into wtr.
func New(wtr io.Writer) *WriterLogger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = `localhost`
	}
	return &WriterLogger{
		wtr:      wtr,
		lvl:      INFO,
		hostname: hostname,
		appname:  filepath.Base(os.Args[0]),
	}
}

// NewStderr returns a WriterLogger aimed at stderr.
func NewStderr() *WriterLogger {
	return New(os.Stderr)
}

// NewDiscard returns a WriterLogger that formats nothing and drops
// everything.
func NewDiscard() *WriterLogger {
	l := New(io.Discard)
	l.lvl = OFF
	return l
}

// SetLevel adjusts the filter; entries below lvl are dropped. OFF disables
// output entirely.
func (l *WriterLogger) SetLevel(lvl Level) error {
	if !lvl.valid() {
		return ErrInvalidLevel
	}
	l.mtx.Lock()
	l.lvl = lvl
	l.mtx.Unlock()
	return nil
}

func (l *WriterLogger) Error(msg string, args ...rfc5424.SDParam) error {
	return l.ErrorWithDepth(DefaultDepth, msg, args...)
}

func (l *WriterLogger) Warn(msg string, args ...rfc5424.SDParam) error {
	return l.WarnWithDepth(DefaultDepth, msg, args...)
}

func (l *WriterLogger) Info(msg string, args ...rfc5424.SDParam) error {
	return l.InfoWithDepth(DefaultDepth, msg, args...)
}

func (l *WriterLogger) ErrorWithDepth(depth int, msg string, args ...rfc5424.SDParam) error {
	return l.rawWrite(ERROR, depth, msg, args...)
}

func (l *WriterLogger) WarnWithDepth(depth int, msg string, args ...rfc5424.SDParam) error {
	return l.rawWrite(WARN, depth, msg, args...)
}

func (l *WriterLogger) InfoWithDepth(depth int, msg string, args ...rfc5424.SDParam) error {
	return l.rawWrite(INFO, depth, msg, args...)
}

func (l *WriterLogger) Errorf(format string, args ...interface{}) error {
	return l.ErrorfWithDepth(DefaultDepth, format, args...)
}

func (l *WriterLogger) Warnf(format string, args ...interface{}) error {
	return l.WarnfWithDepth(DefaultDepth, format, args...)
}

func (l *WriterLogger) Infof(format string, args ...interface{}) error {
	return l.InfofWithDepth(DefaultDepth, format, args...)
}

func (l *WriterLogger) ErrorfWithDepth(depth int, format string, args ...interface{}) error {
	return l.rawWrite(ERROR, depth, fmt.Sprintf(format, args...))
}

func (l *WriterLogger) WarnfWithDepth(depth int, format string, args ...interface{}) error {
	return l.rawWrite(WARN, depth, fmt.Sprintf(format, args...))
}

func (l *WriterLogger) InfofWithDepth(depth int, format string, args ...interface{}) error {
	return l.rawWrite(INFO, depth, fmt.Sprintf(format, args...))
}

func (l *WriterLogger) Hostname() string {
	return l.hostname
}

func (l *WriterLogger) Appname() string {
	return l.appname
}

// rawWrite formats and emits a single entry. The callsite is resolved here
// so depth counts frames above this function.
func (l *WriterLogger) rawWrite(lvl Level, depth int, msg string, args ...rfc5424.SDParam) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.lvl == OFF || lvl < l.lvl {
		return nil
	}
	callsite := `unknown`
	if _, file, line, ok := runtime.Caller(depth); ok {
		callsite = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s %s %s %s",
		time.Now().UTC().Format(time.RFC3339), l.hostname, l.appname, lvl, callsite, msg)
	for _, sd := range args {
		fmt.Fprintf(&sb, " %s=%q", sd.Name, sd.Value)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(l.wtr, sb.String())
	return err
}
