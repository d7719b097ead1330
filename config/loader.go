/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	hikefs "bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/internal/logger"
	"bennypowers.dev/hike/specifier"
	"bennypowers.dev/hike/trail"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "hike"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/hike.{yaml,yml,json} in rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem hikefs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		logger.Debug("loaded config %s", configPath)
		return cfg, nil
	}

	logger.Debug("no config found in %s", filepath.Join(rootDir, ConfigDir))
	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or unreadable.
func LoadOrDefault(filesystem hikefs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// RootDir returns the trail root for a project in rootDir.
func (c *Config) RootDir(rootDir string) string {
	switch {
	case c.Root == "":
		return filepath.Clean(rootDir)
	case filepath.IsAbs(c.Root):
		return filepath.Clean(c.Root)
	default:
		return filepath.Join(rootDir, c.Root)
	}
}

// ExpandPaths resolves Paths against the trail root. Globs expand to the
// directories they match, in lexical order, and npm: specifiers to the
// nearest installed package directory. Plain paths are returned whether
// or not they exist.
func (c *Config) ExpandPaths(filesystem hikefs.FileSystem, rootDir string) ([]string, error) {
	base := c.RootDir(rootDir)
	resolver := specifier.NewDefaultResolver(filesystem, base)

	var result []string
	for _, entry := range c.Paths {
		if containsGlob(entry) && !specifier.IsPackageSpecifier(entry) {
			pattern := entry
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(base, pattern)
			}
			expanded, err := expandGlob(filesystem, pattern)
			if err != nil {
				return nil, err
			}
			result = append(result, expanded...)
			continue
		}

		dir, err := resolver.Resolve(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, dir)
	}

	return result, nil
}

// NewTrail builds a trail from the configuration.
func (c *Config) NewTrail(filesystem hikefs.FileSystem, rootDir string) (*trail.Trail, error) {
	t, err := trail.New(filesystem, c.RootDir(rootDir))
	if err != nil {
		return nil, err
	}

	paths, err := c.ExpandPaths(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("error expanding paths: %w", err)
	}
	t.AppendPaths(paths...)
	t.AppendExtensions(c.Extensions...)

	for _, group := range c.Aliases {
		if err := t.AliasExtensions(group.Canonical, group.Aliases...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob returns the directories under the pattern's non-glob prefix
// that match it.
func expandGlob(filesystem hikefs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern, err := filepath.Rel(baseDir, pattern)
	if err != nil {
		return nil, err
	}
	relPattern = filepath.ToSlash(relPattern)

	var matches []string
	err = fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() || path == baseDir {
			return nil
		}

		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("expanded %s to %d directories", pattern, len(matches))
	return matches, nil
}
