/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package trail resolves logical paths to files on disk.
//
// A logical path is a file name stem with an optional, partial or aliased
// extension. Lookups search an ordered list of root directories and accept
// any name made of the requested basename followed by configured
// extensions:
//
//	t, _ := trail.New(fs.NewOSFileSystem(), "/project")
//	t.AppendPaths("app/views", "vendor/plugins/signal_id/app/views")
//	t.AppendExtensions("builder", "coffee", "erb")
//	_ = t.AliasExtension("htm", "html")
//
//	t.Find("projects/index.html")
//	// -> /project/app/views/projects/index.html.erb
//
// Earlier paths shadow later ones, and earlier extensions outrank later
// ones. A Trail always reads the current filesystem. A Snapshot taken from
// it freezes both the configuration and everything it reads from disk.
package trail

import (
	iofs "io/fs"
	"path/filepath"

	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/fscache"
	"bennypowers.dev/hike/orderedset"
)

// Resolver is the lookup surface shared by Trail and Snapshot.
type Resolver interface {
	Root() string
	Paths() []string
	Extensions() []string
	Aliases() map[string][]string

	// Find returns the best match among the fallbacks, or "" if none.
	Find(logicalPaths ...string) (string, error)
	// FindAll returns every match of the first fallback that has any,
	// across all paths, in priority order.
	FindAll(logicalPaths ...string) ([]string, error)
	FindQuery(q Query) (string, error)
	FindAllQuery(q Query) ([]string, error)
	// FindFunc returns the first match accept approves, trying later
	// fallbacks when nothing under an earlier one is approved.
	FindFunc(q Query, accept func(path string) bool) (string, error)
	Walk(q Query, fn WalkFunc) error

	// Entries lists the visible names in dir. Missing dirs list empty.
	Entries(dir string) ([]string, error)
	// Stat returns nil, nil for a missing path.
	Stat(path string) (iofs.FileInfo, error)

	Snapshot() *Snapshot
}

var (
	_ Resolver = (*Trail)(nil)
	_ Resolver = (*Snapshot)(nil)
)

// Trail is the mutable lookup configuration. It is not safe for concurrent
// use. Each lookup reads the filesystem afresh; compiled patterns live only
// for the duration of one call.
type Trail struct {
	filesystem fs.FileSystem
	root       string
	paths      *orderedset.Set[string]
	extensions *orderedset.Set[string]
	aliases    *AliasMap
	patterns   *patternCache
	lister     *fscache.Direct
}

// New creates a Trail rooted at root, or at the working directory when
// root is empty. Relative paths added later are expanded against the root.
func New(filesystem fs.FileSystem, root string) (*Trail, error) {
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &Trail{
		filesystem: filesystem,
		root:       root,
		paths: orderedset.New(func(p string) string {
			if !filepath.IsAbs(p) {
				p = filepath.Join(root, p)
			}
			return filepath.Clean(p)
		}),
		extensions: orderedset.New(NormalizeExtension),
		aliases:    &AliasMap{},
		patterns:   newPatternCache(),
		lister:     fscache.NewDirect(filesystem),
	}, nil
}

// Root returns the absolute base directory.
func (t *Trail) Root() string { return t.root }

// Paths returns the search roots in priority order.
func (t *Trail) Paths() []string { return t.paths.Values() }

// Extensions returns the extensions in priority order.
func (t *Trail) Extensions() []string { return t.extensions.Values() }

// Aliases returns a copy of the canonical-to-aliases mapping.
func (t *Trail) Aliases() map[string][]string { return t.aliases.Map() }

// AppendPaths adds search roots with the lowest priority.
func (t *Trail) AppendPaths(paths ...string) { t.paths.Append(paths...) }

// PrependPaths adds search roots with the highest priority.
func (t *Trail) PrependPaths(paths ...string) { t.paths.Prepend(paths...) }

// RemovePath removes a search root and reports whether it was present.
func (t *Trail) RemovePath(path string) bool { return t.paths.Remove(path) }

// AppendExtensions adds extensions with the lowest priority. A leading
// dot is added when missing.
func (t *Trail) AppendExtensions(exts ...string) { t.extensions.Append(exts...) }

// PrependExtensions adds extensions with the highest priority.
func (t *Trail) PrependExtensions(exts ...string) { t.extensions.Prepend(exts...) }

// RemoveExtension removes an extension and reports whether it was present.
func (t *Trail) RemoveExtension(ext string) bool { return t.extensions.Remove(ext) }

// AliasExtension lets alias stand in for canonical: a lookup for
// "people.html" also matches "people.htm" after AliasExtension("htm", "html").
func (t *Trail) AliasExtension(alias, canonical string) error {
	return t.aliases.Alias(alias, canonical)
}

// AliasExtensions registers several aliases for canonical, in order. It
// stops at the first alias that cannot be registered.
func (t *Trail) AliasExtensions(canonical string, aliases ...string) error {
	for _, alias := range aliases {
		if err := t.aliases.Alias(alias, canonical); err != nil {
			return err
		}
	}
	return nil
}

// UnaliasExtension removes ext as an alias everywhere.
func (t *Trail) UnaliasExtension(ext string) { t.aliases.Unalias(ext) }

// Find implements Resolver.
func (t *Trail) Find(logicalPaths ...string) (string, error) {
	return t.FindQuery(Query{LogicalPaths: logicalPaths})
}

// FindAll implements Resolver.
func (t *Trail) FindAll(logicalPaths ...string) ([]string, error) {
	return t.FindAllQuery(Query{LogicalPaths: logicalPaths})
}

// FindQuery implements Resolver.
func (t *Trail) FindQuery(q Query) (string, error) {
	return t.FindFunc(q, acceptAny)
}

// FindAllQuery implements Resolver.
func (t *Trail) FindAllQuery(q Query) ([]string, error) {
	defer t.patterns.clear()
	return t.index().findAll(q)
}

// FindFunc implements Resolver.
func (t *Trail) FindFunc(q Query, accept func(path string) bool) (string, error) {
	defer t.patterns.clear()
	return t.index().findFunc(q, accept)
}

// Walk implements Resolver.
func (t *Trail) Walk(q Query, fn WalkFunc) error {
	defer t.patterns.clear()
	return t.index().walk(q, fn)
}

// Entries implements Resolver.
func (t *Trail) Entries(dir string) ([]string, error) { return t.lister.Entries(dir) }

// Stat implements Resolver.
func (t *Trail) Stat(path string) (iofs.FileInfo, error) { return t.lister.Stat(path) }

// Snapshot freezes the current configuration into a Snapshot with empty
// caches. Later changes to t do not reach it.
func (t *Trail) Snapshot() *Snapshot {
	return newSnapshot(t.filesystem, t.root, t.paths.Values(), t.extensions.Values(), t.aliases.Clone())
}

// index views the current configuration. The pattern cache is shared
// across the index values of one call and cleared when the call returns.
func (t *Trail) index() *index {
	return &index{
		root:       t.root,
		paths:      t.paths.Values(),
		extensions: t.extensions.Values(),
		aliases:    t.aliases,
		patterns:   t.patterns,
		lister:     t.lister,
	}
}

func acceptAny(string) bool { return true }
