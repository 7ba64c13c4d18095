// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Schema:  "schema.yaml",
		Graph:   graph.Config{IDField: "id", BranchField: "friends"},
		Normalize: normalize.Config{
			TypeConversions: true,
			RequiredFields:  []string{"id"},
		},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, *loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "default config",
			cfg:     Default(),
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "branch field without id field",
			cfg:     Config{Version: 1, Graph: graph.Config{BranchField: "friends"}},
			wantErr: "graph.idField is required",
		},
		{
			name:    "same id and branch field",
			cfg:     Config{Version: 1, Graph: graph.Config{IDField: "id", BranchField: "id"}},
			wantErr: "must differ",
		},
		{
			name:    "empty required field name",
			cfg:     Config{Version: 1, Normalize: normalize.Config{RequiredFields: []string{"id", ""}}},
			wantErr: "must not contain empty names",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Default()
	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "  idField: id")
	assert.Contains(t, output, "  branchField: children")
	assert.NotContains(t, output, "normalize")
	assert.NotContains(t, output, "schema")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "schemas/user.yaml", cfg.Schema)
	assert.Equal(t, graph.Config{IDField: "id", BranchField: "friends"}, cfg.Graph)
	assert.True(t, cfg.Normalize.TypeConversions)
	assert.Equal(t, []string{"id", "name"}, cfg.Normalize.RequiredFields)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestConfig_Merge(t *testing.T) {
	base := Config{
		Version:   1,
		Schema:    "a.yaml",
		Graph:     graph.Config{IDField: "id", BranchField: "friends"},
		Normalize: normalize.Config{RequiredFields: []string{"id"}},
	}
	on := true

	merged := base.Merge(Overrides{
		BranchField:     "children",
		TypeConversions: &on,
		RequiredFields:  []string{"id", "name"},
	})

	assert.Equal(t, "a.yaml", merged.Schema)
	assert.Equal(t, graph.Config{IDField: "id", BranchField: "children"}, merged.Graph)
	assert.True(t, merged.Normalize.TypeConversions)
	assert.Equal(t, []string{"id", "name"}, merged.Normalize.RequiredFields)

	assert.Equal(t, "friends", base.Graph.BranchField)
	assert.Equal(t, []string{"id"}, base.Normalize.RequiredFields)
	assert.Equal(t, base, base.Merge(Overrides{}))
}
