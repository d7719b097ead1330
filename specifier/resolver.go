/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
	"path/filepath"

	hikefs "bennypowers.dev/hike/fs"
)

// ErrPackageNotFound is returned when no node_modules directory holds the
// requested package directory.
var ErrPackageNotFound = errors.New("package not found")

// Resolver resolves search root entries to absolute directories.
type Resolver interface {
	Resolve(spec string) (string, error)
	CanResolve(spec string) bool
}

// LocalResolver joins relative paths to a base directory.
type LocalResolver struct {
	baseDir string
}

// NewLocalResolver creates a resolver for filesystem paths under baseDir.
func NewLocalResolver(baseDir string) *LocalResolver {
	return &LocalResolver{baseDir: baseDir}
}

// Resolve returns spec as an absolute path. It does not check existence.
func (r *LocalResolver) Resolve(spec string) (string, error) {
	if filepath.IsAbs(spec) {
		return filepath.Clean(spec), nil
	}
	return filepath.Join(r.baseDir, spec), nil
}

// CanResolve returns true for entries that are not package specifiers.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that uses the first resolver able
// to handle a spec.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve implements Resolver.
func (c *ChainResolver) Resolve(spec string) (string, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return "", fmt.Errorf("no resolver found for specifier: %s", spec)
}

// CanResolve implements Resolver.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// NewDefaultResolver handles npm: specifiers and local paths, both
// relative to baseDir.
func NewDefaultResolver(fs hikefs.FileSystem, baseDir string) Resolver {
	return NewChainResolver(
		NewNPMResolver(fs, baseDir),
		NewLocalResolver(baseDir),
	)
}
