//go:build !js

package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/mesh-scene/schema"
)

func TestEmbeddedParamsMatchDefaults(t *testing.T) {
	data, err := readParamsFile("")
	require.NoError(t, err)

	params, err := schema.ParseParams(data)
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultParams(), params)
}

func TestReadParamsFileFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte(`radius = 8`), 0o644))

	data, err := readParamsFile(path)
	require.NoError(t, err)
	params, err := schema.ParseParams(data)
	require.NoError(t, err)
	assert.Equal(t, 8.0, params.Radius)

	_, err = readParamsFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
