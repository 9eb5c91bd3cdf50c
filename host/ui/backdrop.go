package ui

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
)

// backdrop is the engine scene behind the UI layer: the sky and the
// directional light from the backdrop model, plus the camera.
type backdrop struct {
	scene  *game.Scene
	camera *graphics.Camera
	light  *graphics.DirectionalLight
}

func createBackdrop(engine *game.Engine, template *game.ModelTemplate) *backdrop {
	result := engine.CreateScene(game.SceneInfo{
		IncludePhysics: opt.V(false),
		IncludeECS:     opt.V(false),
	})

	model := result.InstantiateModel(game.ModelInfo{
		Template:  template,
		Name:      opt.V("Backdrop"),
		IsDynamic: false,
	})
	var light *graphics.DirectionalLight
	if node := model.FindNode("DirectionalLight"); !node.IsNil() {
		light = result.DirectionalLightBindingSet().Get(node)
	}

	camera := createCamera(result.Graphics())
	result.Graphics().SetActiveCamera(camera)
	return &backdrop{
		scene:  result,
		camera: camera,
		light:  light,
	}
}

// target wraps the backdrop so a renderer can place meshes into it.
func (b *backdrop) target(engine *game.Engine) *engineTarget {
	return newEngineTarget(engine.Graphics(), b.scene.Graphics(), b.camera, b.light)
}

// ray returns two points on the line of sight through the pointer position
// x, y of a viewport with the given size.
func (b *backdrop) ray(width, height, x, y int) (near, far dprec.Vec3) {
	viewport := graphics.NewViewport(0, 0, uint32(max(1, width)), uint32(max(1, height)))
	return b.scene.Graphics().Ray(viewport, b.camera, x, y)
}

func (b *backdrop) Delete() {
	b.scene.Delete()
}

func createCamera(scene *graphics.Scene) *graphics.Camera {
	result := scene.CreateCamera()
	result.SetFoVMode(graphics.FoVModeHorizontalPlus)
	result.SetFoV(sprec.Degrees(75))
	result.SetAutoExposure(false)
	result.SetExposure(1.0)
	result.SetAutoFocus(false)
	result.SetCascadeDistances([]float32{32.0})
	return result
}
