// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/jsonshape/internal/config"
	"github.com/dacolabs/jsonshape/internal/jschema"
	"github.com/dacolabs/jsonshape/internal/validate"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSchema indicates a command needs a schema and none was configured.
	ErrNoSchema = errors.New("no schema configured (use --schema or set schema in jsonshape.yaml)")

	// ErrInvalidSchema indicates the schema file couldn't be loaded.
	ErrInvalidSchema = errors.New("invalid schema")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for one command run.
type Context struct {
	// Dir is the directory relative paths resolve against.
	Dir string

	// Config is the loaded jsonshape.yaml, or an empty current-version
	// config when there is none.
	Config config.Config

	// ConfigPath is the loaded file, empty when running without one.
	ConfigPath string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadDir(ctx, cwd)
}

// LoadDir is Load for an explicit directory. A missing jsonshape.yaml is not
// an error; commands then rely on their flags.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	sess := &Context{Dir: dir, Config: config.Config{Version: config.CurrentConfigVersion}}

	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		sess.Config = *cfg
		sess.ConfigPath = configPath
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// Path resolves p against the context directory.
func (c *Context) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// LoadSchema loads the schema file at path, resolved against Dir.
func (c *Context) LoadSchema(path string) (validate.Schema, error) {
	if path == "" {
		return nil, ErrNoSchema
	}
	full := c.Path(path)
	loader := jschema.NewLoader(os.DirFS(filepath.Dir(full)))
	s, err := loader.LoadFile(filepath.Base(full))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return s, nil
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}
