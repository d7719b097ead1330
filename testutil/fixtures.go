/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for hike.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/hike/internal/mapfs"
)

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	walkFixture(t, fixtureDir, func(relPath string, content []byte, mode fs.FileMode) error {
		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), mode)
		return nil
	})
	return mfs
}

// CopyFixtureDir copies fixture files from testdata into a fresh temporary
// directory and returns its absolute path, for tests that need a real disk.
func CopyFixtureDir(t *testing.T, fixtureDir string) string {
	t.Helper()

	root := t.TempDir()
	walkFixture(t, fixtureDir, func(relPath string, content []byte, mode fs.FileMode) error {
		target := filepath.Join(root, relPath)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return os.WriteFile(target, content, mode)
	})

	// Resolve /tmp symlinks (macOS) so expected paths compare equal.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("Failed to resolve temp dir %s: %v", root, err)
	}
	return resolved
}

// fixturePath tries multiple possible paths since Go test changes working
// directory to the package under test.
func fixturePath(t *testing.T, fixtureDir string) string {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", fixtureDir),
		filepath.Join("..", "testdata", fixtureDir),
		filepath.Join("..", "..", "testdata", fixtureDir),
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	return ""
}

func walkFixture(t *testing.T, fixtureDir string, visit func(relPath string, content []byte, mode fs.FileMode) error) {
	t.Helper()

	root := fixturePath(t, fixtureDir)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		return visit(relPath, content, 0644)
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}
}
