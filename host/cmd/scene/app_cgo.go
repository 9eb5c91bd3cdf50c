//go:build !js

package main

import (
	"fmt"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/mesh-scene/host/resources"
	gameui "github.com/nobonobo/mesh-scene/host/ui"
)

func runApplication(options gameui.Options) error {
	storage, err := chunked.NewFileStorage("./assets")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller := createController(options, storage, nativegame.NewShaderCollection(), nativegame.NewShaderBuilder(), nativeui.NewShaderCollection())

	cfg := nativeapp.NewConfig("Mesh Scene", 1280, 800)
	cfg.SetFullscreen(false)
	cfg.SetMaximized(false)
	cfg.SetMinSize(800, 600)
	cfg.SetVSync(true)
	cfg.SetLocator(ui.WrappedLocator(resource.NewFSLocator(resources.UI)))
	cfg.SetAudioEnabled(false)
	return nativeapp.Run(cfg, controller)
}
