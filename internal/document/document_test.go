// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package document

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		path string
		yaml bool
	}{
		{"data.yaml", true},
		{"data.yml", true},
		{"data.json", false},
		{"data", false},
		{"DATA.YAML", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, err := ParserFor(tt.path).Parse(strings.NewReader("a: 1"))
			if tt.yaml {
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"a": 1.0}, v)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParse_YAMLMatchesJSONShape(t *testing.T) {
	yamlDoc := `
- id: 1
  name: Ada
  score: 9.5
  active: true
  friends: [2, 3]
  meta:
    7: seven
  note: null
`
	jsonDoc := `[{"id":1,"name":"Ada","score":9.5,"active":true,"friends":[2,3],"meta":{"7":"seven"},"note":null}]`

	fromYAML, err := YAML.Parse(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	fromJSON, err := JSON.Parse(strings.NewReader(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestParse_Invalid(t *testing.T) {
	_, err := JSON.Parse(strings.NewReader("{invalid json}"))
	assert.Error(t, err)

	_, err = YAML.Parse(strings.NewReader("{{invalid yaml"))
	assert.Error(t, err)

	_, err = JSON.Parse(nil)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"users.json": &fstest.MapFile{Data: []byte(`[{"id": 1}]`)},
		"bad.json":   &fstest.MapFile{Data: []byte(`[`)},
	}

	v, err := ReadFile(fsys, "users.json")
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": 1.0}}, v)

	_, err = ReadFile(fsys, "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = ReadFile(fsys, "missing.json")
	assert.Error(t, err)
}

func TestRecords(t *testing.T) {
	list := []any{map[string]any{"id": 1.0}}

	tests := []struct {
		name    string
		doc     any
		want    []any
		wantErr bool
	}{
		{"top-level array", list, list, false},
		{"records field", map[string]any{"records": list, "other": []any{}}, list, false},
		{"single array field", map[string]any{"users": list, "count": 1.0}, list, false},
		{"ambiguous arrays", map[string]any{"a": list, "b": list}, nil, true},
		{"no arrays", map[string]any{"id": 1.0}, nil, true},
		{"scalar", "text", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Records(tt.doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoRecords)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriters(t *testing.T) {
	v := map[string]any{"isValid": false, "count": 2.0}

	var buf bytes.Buffer
	require.NoError(t, JSONWriter.Write(&buf, v))
	assert.Equal(t, "{\n  \"count\": 2,\n  \"isValid\": false\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, YAMLWriter.Write(&buf, v))
	assert.Contains(t, buf.String(), "isValid: false")
	assert.Contains(t, buf.String(), "count: 2")
}

func TestWriterFor(t *testing.T) {
	w, err := WriterFor("yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", w.Name())

	_, err = WriterFor("xml")
	assert.Error(t, err)
}
