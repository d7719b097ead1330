/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the hike CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	Modified  bool   `json:"modified"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// Get returns the version string for the application.
// Module versions recorded by `go install` win over "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return Version
}

// Info returns detailed build information, falling back to the VCS stamp
// embedded by the go toolchain when ldflags were not set.
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if bi.GitCommit == "unknown" {
				bi.GitCommit = setting.Value
			}
		case "vcs.time":
			if bi.BuildTime == "unknown" {
				bi.BuildTime = setting.Value
			}
		case "vcs.modified":
			bi.Modified = setting.Value == "true"
		}
	}
	return bi
}

// Full returns the version with a short commit suffix when known.
func Full() string {
	bi := Info()
	if bi.GitCommit == "unknown" {
		return bi.Version
	}
	commit := bi.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if bi.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", bi.Version, commit)
}
