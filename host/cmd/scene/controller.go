package main

import (
	"github.com/mokiat/lacking/app"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/mesh-scene/host/resources"
	gameui "github.com/nobonobo/mesh-scene/host/ui"
)

// createController layers the UI, which draws the animated meshes, on top of
// the game engine, which draws the sky and lights of the backdrop.
func createController(options gameui.Options, storage chunked.Storage, gameShaders graphics.ShaderCollection, gameBuilder graphics.ShaderBuilder, uiShaders ui.ShaderCollection) app.Controller {
	locator := ui.WrappedLocator(resource.NewFSLocator(resources.UI))

	gameController := game.NewController(storage, gameShaders, gameBuilder)
	uiController := ui.NewController(locator, uiShaders, func(w *ui.Window) {
		gameui.BootstrapApplication(w, gameController, options)
	})

	return app.NewLayeredController(gameController, uiController)
}
