/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fscache wraps directory listing and stat calls for path lookup.
//
// Direct goes to the filesystem on every call. Cache memoizes each
// directory listing and each stat result for its whole lifetime; there is
// no invalidation. Missing paths are not errors: Entries returns an empty
// list and Stat returns a nil FileInfo. Any other failure is returned to
// the caller and never cached.
package fscache

import (
	"errors"
	iofs "io/fs"
	"slices"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sync/singleflight"

	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/internal/logger"
)

// Lister is the filesystem view path resolution reads through.
type Lister interface {
	// Entries returns the sorted visible names in dir.
	Entries(dir string) ([]string, error)

	// Stat returns nil, nil when path does not exist.
	Stat(path string) (iofs.FileInfo, error)
}

// Direct is an uncached Lister.
type Direct struct {
	filesystem fs.FileSystem
}

// NewDirect creates a Lister that always observes the current filesystem.
func NewDirect(filesystem fs.FileSystem) *Direct {
	return &Direct{filesystem: filesystem}
}

// Entries implements Lister.
func (d *Direct) Entries(dir string) ([]string, error) {
	return readEntries(d.filesystem, dir)
}

// Stat implements Lister.
func (d *Direct) Stat(path string) (iofs.FileInfo, error) {
	return statPath(d.filesystem, path)
}

// Cache is a memoizing Lister. It is safe for concurrent use; concurrent
// misses on the same key share one filesystem call.
type Cache struct {
	filesystem fs.FileSystem

	mu      sync.RWMutex
	entries map[string][]string
	stats   map[string]iofs.FileInfo // nil value marks an absent path
	group   singleflight.Group
}

// New creates an empty Cache over filesystem.
func New(filesystem fs.FileSystem) *Cache {
	return &Cache{
		filesystem: filesystem,
		entries:    make(map[string][]string),
		stats:      make(map[string]iofs.FileInfo),
	}
}

// Entries implements Lister. The returned slice is the caller's to modify.
func (c *Cache) Entries(dir string) ([]string, error) {
	c.mu.RLock()
	names, ok := c.entries[dir]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(names), nil
	}

	v, err, _ := c.group.Do("entries\x00"+dir, func() (any, error) {
		names, err := readEntries(c.filesystem, dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("cached %d entries for %s", len(names), dir)
		c.mu.Lock()
		c.entries[dir] = names
		c.mu.Unlock()
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]string)), nil
}

// Stat implements Lister.
func (c *Cache) Stat(path string) (iofs.FileInfo, error) {
	c.mu.RLock()
	info, ok := c.stats[path]
	c.mu.RUnlock()
	if ok {
		return info, nil
	}

	v, err, _ := c.group.Do("stat\x00"+path, func() (any, error) {
		info, err := statPath(c.filesystem, path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.stats[path] = info
		c.mu.Unlock()
		return info, nil
	})
	if err != nil {
		return nil, err
	}
	info, _ = v.(iofs.FileInfo)
	return info, nil
}

// Len returns the number of cached directory listings and stat results.
func (c *Cache) Len() (entries, stats int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), len(c.stats)
}

// Hidden reports whether a directory entry is invisible to lookups:
// dotfiles, editor backups ending in "~" and lock files like "#name#".
func Hidden(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return true
	}
	return len(name) >= 2 && name[0] == '#' && name[len(name)-1] == '#'
}

func readEntries(filesystem fs.FileSystem, dir string) ([]string, error) {
	dirents, err := filesystem.ReadDir(dir)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !Hidden(d.Name()) {
			names = append(names, d.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func statPath(filesystem fs.FileSystem, path string) (iofs.FileInfo, error) {
	info, err := filesystem.Stat(path)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// isNotFound treats a file used as a directory component like a missing
// path.
func isNotFound(err error) bool {
	return errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
