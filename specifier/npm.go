/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"

	hikefs "bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/internal/logger"
)

// NPMResolver resolves npm: specifiers to directories under node_modules.
type NPMResolver struct {
	fs      hikefs.FileSystem
	rootDir string
}

// NewNPMResolver creates a resolver for npm: specifiers. Lookup starts
// in rootDir and walks up toward the filesystem root, the way node does.
func NewNPMResolver(fs hikefs.FileSystem, rootDir string) *NPMResolver {
	return &NPMResolver{fs: fs, rootDir: rootDir}
}

// Resolve returns the nearest node_modules directory matching spec.
func (r *NPMResolver) Resolve(spec string) (string, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM {
		return "", fmt.Errorf("not an npm specifier: %s", spec)
	}

	dir, err := filepath.Abs(r.rootDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", r.rootDir, err)
	}
	start := dir

	for {
		candidate := filepath.Join(dir, "node_modules", parsed.Package, filepath.FromSlash(parsed.Dir))
		if info, err := r.fs.Stat(candidate); err == nil && info.IsDir() {
			logger.Debug("resolved %s to %s", spec, candidate)
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s (looked in node_modules from %s up)", ErrPackageNotFound, spec, start)
}

// CanResolve returns true for npm: specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return IsPackageSpecifier(spec)
}
