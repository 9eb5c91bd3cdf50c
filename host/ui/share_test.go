//go:build !js

package ui

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/mesh-scene/schema"
)

func TestShareLinkRestoresParams(t *testing.T) {
	params := schema.DefaultParams()
	params.Color = "#00ffff"
	params.Radius = 6.5
	params.LightColor = "gold"

	link, err := url.Parse(ShareLink(params))
	require.NoError(t, err)
	assert.Equal(t, ViewNameInteractive, link.Fragment)
	assert.Equal(t, params, schema.ParamsFromQuery(link.Query(), schema.DefaultParams()))
}

func TestIsKnownView(t *testing.T) {
	for _, view := range []ViewName{ViewNameHome, ViewNameBasic, ViewNameInteractive, ViewNameLicenses} {
		assert.True(t, IsKnownView(view), view)
	}
	assert.False(t, IsKnownView("room"))
	assert.False(t, IsKnownView(""))
}

func TestInitialViewUsesOptions(t *testing.T) {
	assert.Equal(t, ViewNameBasic, initialView(Options{InitialView: ViewNameBasic}))
	assert.Empty(t, QueryParams())
}

func TestWrapWords(t *testing.T) {
	lines := wrapWords("open ui/params.toml: no such file or directory", 20)
	assert.Equal(t, []string{"open ui/params.toml:", "no such file or", "directory"}, lines)

	assert.Equal(t, []string{"abcdefghij"}, wrapWords("abcdefghij", 4))
	assert.Empty(t, wrapWords("   ", 10))
}
