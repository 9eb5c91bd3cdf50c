package ui

import (
	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/mesh-scene/schema"
)

// Options are the startup choices made on the command line.
type Options struct {
	InitialView ViewName
	ParamsPath  string
}

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Options     Options
}

// SceneData is what the loading screen produces for the scene screens.
type SceneData struct {
	Backdrop *game.ModelTemplate
	Params   schema.Params
}

// SetParams stores the latest panel values so that the next scene screen
// starts from them.
func (d *SceneData) SetParams(params schema.Params) {
	d.Params = params.Normalize()
}
