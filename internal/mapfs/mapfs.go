/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"syscall"
	"testing/fstest"
	"time"
)

// Operation names accepted by Calls.
const (
	OpStat    = "stat"
	OpReadDir = "readdir"
)

// MapFileSystem implements FileSystem using an in-memory fstest.MapFS.
// Paths are absolute, slash-separated and cleaned before lookup.
// Failures can be injected per path to exercise error propagation.
type MapFileSystem struct {
	mu       sync.RWMutex
	mapFS    fstest.MapFS
	modTime  time.Time
	failures map[string]error
	calls    map[string]int
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:    make(fstest.MapFS),
		modTime:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds an empty directory to the in-memory filesystem.
// The directory is backed by a hidden .keep file.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[path.Join(p, ".keep")] = &fstest.MapFile{
		Data:    []byte(""),
		Mode:    mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// WriteFile replaces the contents of a file, creating it if needed.
func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = mfs.cleanPath(name)
	if file, exists := mfs.mapFS[path.Dir(name)]; exists && !file.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: "/" + name, Err: syscall.ENOTDIR}
	}

	mfs.mapFS[name] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: mfs.modTime,
	}
	return nil
}

// Remove deletes the named file.
func (mfs *MapFileSystem) Remove(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = mfs.cleanPath(name)
	if _, exists := mfs.mapFS[name]; !exists {
		return &fs.PathError{Op: "remove", Path: "/" + name, Err: fs.ErrNotExist}
	}

	delete(mfs.mapFS, name)
	return nil
}

// FailWith makes every Stat, ReadDir and ReadFile of p return err until
// cleared with a nil err.
func (mfs *MapFileSystem) FailWith(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	if err == nil {
		delete(mfs.failures, p)
		return
	}
	mfs.failures[p] = err
}

// Calls reports how many times op (OpStat or OpReadDir) has been invoked.
func (mfs *MapFileSystem) Calls(op string) int {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.calls[op]
}

// ResetCalls zeroes the call counters.
func (mfs *MapFileSystem) ResetCalls() {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.calls = make(map[string]int)
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err, failing := mfs.failures[name]; failing {
		return nil, &fs.PathError{Op: "open", Path: "/" + name, Err: err}
	}
	return fs.ReadFile(mfs.mapFS, name)
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = mfs.cleanPath(name)
	mfs.calls[OpStat]++
	if err, failing := mfs.failures[name]; failing {
		return nil, &fs.PathError{Op: "stat", Path: "/" + name, Err: err}
	}

	return fs.Stat(mfs.mapFS, name)
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = mfs.cleanPath(p)
	if _, exists := mfs.mapFS[p]; exists {
		return true
	}

	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}

	return false
}

// ReadDir implements FileSystem. Reading a regular file fails with
// ENOTDIR, as it does on disk.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = mfs.cleanPath(name)
	mfs.calls[OpReadDir]++
	if err, failing := mfs.failures[name]; failing {
		return nil, &fs.PathError{Op: "readdir", Path: "/" + name, Err: err}
	}
	if file, exists := mfs.mapFS[name]; exists && !file.Mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: "/" + name, Err: syscall.ENOTDIR}
	}

	return fs.ReadDir(mfs.mapFS, name)
}

// Open implements FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.mapFS.Open(mfs.cleanPath(name))
}

func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
