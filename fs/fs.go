/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction hike resolves against.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem provides the read-only operations path resolution needs.
// It satisfies fs.FS, fs.StatFS and fs.ReadDirFS so it can be handed to
// fs.WalkDir and glob matchers directly.
type FileSystem interface {
	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// ReadDir lists the named directory, sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat follows symlinks, like os.Stat.
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	Open(name string) (fs.File, error)
}

var (
	_ FileSystem   = (*OSFileSystem)(nil)
	_ fs.StatFS    = (*OSFileSystem)(nil)
	_ fs.ReadDirFS = (*OSFileSystem)(nil)
)

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
