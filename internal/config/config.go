// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles jsonshape project configuration.
package config

import (
	"errors"
	"os"

	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "jsonshape.yaml"

// Config represents the jsonshape.yaml project configuration file.
type Config struct {
	Version   int              `yaml:"version"`
	Schema    string           `yaml:"schema,omitempty"`
	Graph     graph.Config     `yaml:"graph,omitempty"`
	Normalize normalize.Config `yaml:"normalize,omitempty"`
}

// Default returns the configuration written by "jsonshape init".
func Default() Config {
	return Config{
		Version: CurrentConfigVersion,
		Graph:   graph.Config{IDField: "id", BranchField: "children"},
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Graph.BranchField != "" && c.Graph.IDField == "" {
		return errors.New("graph.idField is required when graph.branchField is set")
	}
	if c.Graph.IDField != "" && c.Graph.IDField == c.Graph.BranchField {
		return errors.New("graph.idField and graph.branchField must differ")
	}
	for _, f := range c.Normalize.RequiredFields {
		if f == "" {
			return errors.New("normalize.requiredFields must not contain empty names")
		}
	}
	return nil
}

// Overrides holds command-line values that take precedence over the file.
// Empty strings and nil pointers leave the file value in place.
type Overrides struct {
	Schema          string
	IDField         string
	BranchField     string
	TypeConversions *bool
	RequiredFields  []string
}

// Merge returns a copy of c with the non-empty overrides applied.
func (c Config) Merge(o Overrides) Config {
	out := c
	out.Normalize.RequiredFields = append([]string(nil), c.Normalize.RequiredFields...)
	if o.Schema != "" {
		out.Schema = o.Schema
	}
	if o.IDField != "" {
		out.Graph.IDField = o.IDField
	}
	if o.BranchField != "" {
		out.Graph.BranchField = o.BranchField
	}
	if o.TypeConversions != nil {
		out.Normalize.TypeConversions = *o.TypeConversions
	}
	if len(o.RequiredFields) > 0 {
		out.Normalize.RequiredFields = append([]string(nil), o.RequiredFields...)
	}
	return out
}
