/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"bennypowers.dev/hike/fscache"
)

// Query describes one lookup.
type Query struct {
	// LogicalPaths are tried in order; the first that yields any match wins.
	LogicalPaths []string

	// BasePath is the directory relative logical paths ("./x", "../x") are
	// resolved against. It defaults to the root. A relative BasePath is
	// taken relative to the working directory.
	BasePath string
}

// WalkFunc is called for each match, in priority order. Returning SkipAll
// ends the walk without error; any other error ends it and is returned.
type WalkFunc func(path string) error

// visitFunc reports whether a match was accepted.
type visitFunc func(path string) (bool, error)

// index is one resolution context: a fixed view of the configuration plus
// the caches lookups read through.
type index struct {
	root       string
	paths      []string
	extensions []string
	aliases    *AliasMap
	patterns   *patternCache
	lister     fscache.Lister
}

func (x *index) walk(q Query, fn WalkFunc) error {
	err := x.each(q, true, func(path string) (bool, error) {
		return true, fn(path)
	})
	if errors.Is(err, SkipAll) {
		return nil
	}
	return err
}

func (x *index) findFunc(q Query, accept func(path string) bool) (string, error) {
	var found string
	err := x.each(q, false, func(path string) (bool, error) {
		if !accept(path) {
			return false, nil
		}
		found = path
		return true, SkipAll
	})
	if err != nil && !errors.Is(err, SkipAll) {
		return "", err
	}
	return found, nil
}

func (x *index) findAll(q Query) ([]string, error) {
	matches := []string{}
	err := x.walk(q, func(path string) error {
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// each visits matches for q.LogicalPaths in order. With firstHitOnly it
// stops after the first logical path that produced an accepted match.
func (x *index) each(q Query, firstHitOnly bool, visit visitFunc) error {
	base := q.BasePath
	if base == "" {
		base = x.root
	}

	for _, logical := range q.LogicalPaths {
		logical = strings.TrimPrefix(logical, "/")
		if logical == "" {
			continue
		}

		hits := 0
		counted := func(path string) (bool, error) {
			ok, err := visit(path)
			if ok {
				hits++
			}
			return ok, err
		}

		var err error
		if isRelative(logical) {
			err = x.findInBasePath(logical, base, counted)
		} else {
			err = x.findInPaths(logical, counted)
		}
		if err != nil {
			return err
		}
		if firstHitOnly && hits > 0 {
			return nil
		}
	}
	return nil
}

// findInBasePath resolves "./x" or "../x" against base. The match only
// counts when the resulting directory lies inside one of the paths.
func (x *index) findInBasePath(logical, base string, visit visitFunc) error {
	candidate := filepath.Join(base, filepath.FromSlash(logical))
	if !filepath.IsAbs(candidate) {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", logical, err)
		}
		candidate = abs
	}

	dir := filepath.Dir(candidate)
	if !x.containsPath(dir) {
		return nil
	}
	return x.match(dir, filepath.Base(candidate), visit)
}

// findInPaths looks for logical under every path, earliest path first.
func (x *index) findInPaths(logical string, visit visitFunc) error {
	logical = filepath.Clean(filepath.FromSlash(logical))
	dir := filepath.Dir(logical)
	basename := filepath.Base(logical)

	for _, root := range x.paths {
		if err := x.match(filepath.Join(root, dir), basename, visit); err != nil {
			return err
		}
	}
	return nil
}

// match visits the regular files in dir that satisfy basename, best
// ranked first.
func (x *index) match(dir, basename string, visit visitFunc) error {
	names, err := x.lister.Entries(dir)
	if err != nil {
		return err
	}

	aliases := x.aliases.AliasesFor(filepath.Ext(basename))
	pattern := x.patterns.get(basename, func() *regexp.Regexp {
		return compilePattern(basename, x.extensions, aliases)
	})

	var matched []string
	for _, name := range names {
		if pattern.MatchString(name) {
			matched = append(matched, name)
		}
	}

	for _, c := range rank(matched, basename, x.extensions, aliases) {
		path := filepath.Join(dir, c.name)
		info, err := x.lister.Stat(path)
		if err != nil {
			return err
		}
		if info == nil || !info.Mode().IsRegular() {
			continue
		}
		if _, err := visit(path); err != nil {
			return err
		}
	}
	return nil
}

func (x *index) containsPath(dir string) bool {
	for _, root := range x.paths {
		if within(dir, root) {
			return true
		}
	}
	return false
}

func (x *index) entries(dir string) ([]string, error) {
	return x.lister.Entries(dir)
}

func (x *index) stat(path string) (iofs.FileInfo, error) {
	return x.lister.Stat(path)
}

// within reports whether dir is root or below it. A plain prefix test would
// put /usr/lib/node_modules inside /usr/lib/node.
func within(dir, root string) bool {
	if dir == root {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(dir, root)
}

func isRelative(logical string) bool {
	return strings.HasPrefix(logical, "./") || strings.HasPrefix(logical, "../")
}
