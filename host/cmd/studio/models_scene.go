package main

import (
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/game/asset/dsl"
)

// backdrop.dat holds the parts of the scene drawn by the game engine: a
// plain sky and the lights. Meshes are animated and drawn by the UI layer.
var _ = func() any {
	sky := dsl.CreateSky(dsl.CreateColorSkyMaterial(
		dsl.RGB(0.05, 0.06, 0.09),
	))

	directionalLight := dsl.CreateDirectionalLight(
		dsl.SetEmitColor(dsl.RGB(1.0, 1.0, 1.0)),
		dsl.SetCastShadow(dsl.Const(false)),
	)

	return dsl.Save("backdrop.dat", dsl.CreateModel(
		dsl.AddNode(dsl.CreateNode("Sky",
			dsl.AddAttachment(sky),
		)),
		dsl.AddNode(dsl.CreateNode("DirectionalLight",
			dsl.AddAttachment(directionalLight),
			dsl.SetRotation(dsl.Const(dprec.QuatProd(
				dprec.RotationQuat(dprec.Degrees(-30), dprec.BasisYVec3()),
				dprec.RotationQuat(dprec.Degrees(-45), dprec.BasisXVec3()),
			))),
		)),
	))
}()
