/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package setup builds a trail from the project config file layered under
// command line flags and HIKE_* environment variables.
package setup

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/hike/config"
	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/internal/logger"
	"bennypowers.dev/hike/trail"
)

// Setting keys. Each is also a persistent flag name and, upper-cased with
// a HIKE_ prefix, an environment variable.
const (
	KeyRoot     = "root"
	KeyPath     = "path"
	KeyExt      = "ext"
	KeyAlias    = "alias"
	KeyNoConfig = "no-config"
	KeyVerbose  = "verbose"
)

// ErrInvalidAliasFlag is returned for an --alias value not of the form
// alias:canonical.
var ErrInvalidAliasFlag = errors.New("alias must be alias:canonical")

// Viper holds the settings shared by every command.
var Viper = New()

// New returns a viper instance reading HIKE_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("HIKE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags registers the persistent lookup flags on flags and binds them
// to v.
func AddFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.StringP(KeyRoot, "r", "", "Trail root (default: working directory)")
	flags.StringSliceP(KeyPath, "p", nil, "Search root, highest priority first (repeatable)")
	flags.StringSliceP(KeyExt, "e", nil, "Extension, highest priority first (repeatable)")
	flags.StringSliceP(KeyAlias, "a", nil, "Extension alias as alias:canonical (repeatable)")
	flags.Bool(KeyNoConfig, false, "Ignore .config/hike.{yaml,yml,json}")
	flags.BoolP(KeyVerbose, "v", false, "Log debug output to stderr")

	for _, key := range []string{KeyRoot, KeyPath, KeyExt, KeyAlias, KeyNoConfig, KeyVerbose} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}

// ApplyLogging sets the log level from the verbose setting.
func ApplyLogging(v *viper.Viper) {
	logger.SetVerbose(v.GetBool(KeyVerbose))
}

// Trail builds a trail from the config file in the root directory, then
// gives flag and environment paths and extensions the highest priority
// and registers their aliases.
func Trail(v *viper.Viper, filesystem fs.FileSystem) (*trail.Trail, error) {
	rootDir, err := filepath.Abs(orDefault(v.GetString(KeyRoot), "."))
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if !v.GetBool(KeyNoConfig) {
		loaded, err := config.Load(filesystem, rootDir)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		if loaded != nil {
			cfg = loaded
		}
	}

	t, err := cfg.NewTrail(filesystem, rootDir)
	if err != nil {
		return nil, err
	}

	t.PrependPaths(v.GetStringSlice(KeyPath)...)
	t.PrependExtensions(v.GetStringSlice(KeyExt)...)

	for _, pair := range v.GetStringSlice(KeyAlias) {
		alias, canonical, err := ParseAlias(pair)
		if err != nil {
			return nil, err
		}
		if err := t.AliasExtension(alias, canonical); err != nil {
			return nil, err
		}
	}

	logger.Debug("trail %s: paths %v, extensions %v", t.Root(), t.Paths(), t.Extensions())
	return t, nil
}

// ParseAlias splits an alias:canonical pair.
func ParseAlias(pair string) (alias, canonical string, err error) {
	alias, canonical, ok := strings.Cut(pair, ":")
	alias = strings.TrimSpace(alias)
	canonical = strings.TrimSpace(canonical)
	if !ok || alias == "" || canonical == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAliasFlag, pair)
	}
	return alias, canonical, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
