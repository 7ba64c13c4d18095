// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"),
		[]byte(`[{"id":1},{"id":2,"friends":[1]}]`), 0o600))

	env := func(key string) string {
		if key == NoInputEnv {
			return "1"
		}
		return ""
	}

	assert.NoError(t, Run(context.Background(), []string{"version"}, env))

	// With prompts disabled the missing reference field is an error.
	err := Run(context.Background(), []string{"graph", "users.json", "--id-field", "id"}, env)
	assert.ErrorContains(t, err, "no reference field configured")

	assert.Error(t, Run(context.Background(), []string{"nope"}, env))
}
