/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import (
	iofs "io/fs"
	"slices"

	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/fscache"
	"bennypowers.dev/hike/internal/logger"
)

// Snapshot is a read-only Trail that assumes the filesystem does not
// change. Every directory listing, stat result and compiled pattern is
// kept for the lifetime of the Snapshot, so repeated lookups avoid
// syscalls. It has no mutators and is safe for concurrent use.
//
//	snap := t.Snapshot()
//	snap.Find("hike/trail")
//	snap.Find("test_trail")
type Snapshot struct {
	idx   *index
	cache *fscache.Cache
}

func newSnapshot(filesystem fs.FileSystem, root string, paths, extensions []string, aliases *AliasMap) *Snapshot {
	cache := fscache.New(filesystem)
	logger.Debug("snapshot of %s: %d paths, %d extensions, %d aliased extensions",
		root, len(paths), len(extensions), aliases.Len())
	return &Snapshot{
		idx: &index{
			root:       root,
			paths:      paths,
			extensions: extensions,
			aliases:    aliases,
			patterns:   newPatternCache(),
			lister:     cache,
		},
		cache: cache,
	}
}

// Root implements Resolver.
func (s *Snapshot) Root() string { return s.idx.root }

// Paths implements Resolver.
func (s *Snapshot) Paths() []string { return slices.Clone(s.idx.paths) }

// Extensions implements Resolver.
func (s *Snapshot) Extensions() []string { return slices.Clone(s.idx.extensions) }

// Aliases implements Resolver.
func (s *Snapshot) Aliases() map[string][]string { return s.idx.aliases.Map() }

// Find implements Resolver.
func (s *Snapshot) Find(logicalPaths ...string) (string, error) {
	return s.FindQuery(Query{LogicalPaths: logicalPaths})
}

// FindAll implements Resolver.
func (s *Snapshot) FindAll(logicalPaths ...string) ([]string, error) {
	return s.FindAllQuery(Query{LogicalPaths: logicalPaths})
}

// FindQuery implements Resolver.
func (s *Snapshot) FindQuery(q Query) (string, error) {
	return s.idx.findFunc(q, acceptAny)
}

// FindAllQuery implements Resolver.
func (s *Snapshot) FindAllQuery(q Query) ([]string, error) {
	return s.idx.findAll(q)
}

// FindFunc implements Resolver.
func (s *Snapshot) FindFunc(q Query, accept func(path string) bool) (string, error) {
	return s.idx.findFunc(q, accept)
}

// Walk implements Resolver.
func (s *Snapshot) Walk(q Query, fn WalkFunc) error {
	return s.idx.walk(q, fn)
}

// Entries implements Resolver.
func (s *Snapshot) Entries(dir string) ([]string, error) { return s.idx.entries(dir) }

// Stat implements Resolver.
func (s *Snapshot) Stat(path string) (iofs.FileInfo, error) { return s.idx.stat(path) }

// Snapshot returns s; it is already frozen.
func (s *Snapshot) Snapshot() *Snapshot { return s }

// CacheLen reports how many directory listings, stat results and compiled
// patterns the snapshot holds.
func (s *Snapshot) CacheLen() (entries, stats, patterns int) {
	entries, stats = s.cache.Len()
	return entries, stats, s.idx.patterns.size()
}
