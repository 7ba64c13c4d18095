// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
}

// Current returns the build information, filling anything not set through
// ldflags from the module build info ("go install module@version").
func Current() Build {
	b := Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()}
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(&b, info)
	}
	return b
}

func fill(b *Build, info *debug.BuildInfo) {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		}
	}
}

// String renders the one-line form printed by "jsonshape version".
func (b Build) String() string {
	return fmt.Sprintf("jsonshape version %s (commit: %s, built: %s, go: %s)", b.Version, b.Commit, b.Date, b.Go)
}
