// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	b := Build{Version: "dev", Commit: "none", Date: "unknown"}
	fill(&b, info)
	assert.Equal(t, Build{Version: "v1.2.3", Commit: "0123456", Date: "2026-01-02T03:04:05Z"}, b)

	pinned := Build{Version: "0.4.0", Commit: "abcdef0", Date: "yesterday"}
	fill(&pinned, info)
	assert.Equal(t, Build{Version: "0.4.0", Commit: "abcdef0", Date: "yesterday"}, pinned)

	devel := Build{Version: "dev", Commit: "none"}
	fill(&devel, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}, Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}})
	assert.Equal(t, "dev", devel.Version)
	assert.Equal(t, "none", devel.Commit)
}

func TestBuild_String(t *testing.T) {
	b := Build{Version: "1.0.0", Commit: "abc1234", Date: "2026-01-01", Go: "go1.24.0"}
	assert.Equal(t, "jsonshape version 1.0.0 (commit: abc1234, built: 2026-01-01, go: go1.24.0)", b.String())
	assert.NotEmpty(t, Current().Go)
}
