package scene

import (
	"math"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/schema"
)

const (
	spinSpeed       = 2.0
	swayAmplitude   = 2.0
	hoverSpinSpeed  = 1.0
	idleSpinSpeed   = 0.2
	clickedScale    = 2.0
	releasedScale   = 1.0
	sphereIdleColor = "cyan"
	sphereHotColor  = "red"
)

// Spin is the rule for boxes and tori: constant spin around X and Y and a
// sway along Z that follows the elapsed time.
func Spin(transform Transform, tick FrameTick) Transform {
	transform.RotationX += tick.Delta * spinSpeed
	transform.RotationY += tick.Delta * spinSpeed
	transform.Position.Z = math.Sin(tick.Elapsed) * swayAmplitude
	return transform
}

// Hover is the rule for spheres: spin around Y faster while hovered and
// double in size while clicked.
func Hover(transform Transform, interaction Interaction, tick FrameTick) Transform {
	speed := idleSpinSpeed
	if interaction.Hovered() {
		speed = hoverSpinSpeed
	}
	transform.RotationY += tick.Delta * speed
	transform.Scale = releasedScale
	if interaction.Clicked() {
		transform.Scale = clickedScale
	}
	return transform
}

func SphereMaterial(interaction Interaction) Material {
	color := sphereIdleColor
	if interaction.Hovered() {
		color = sphereHotColor
	}
	return Material{
		Color:     color,
		Wireframe: true,
	}
}

// KnotMaterial derives the knot material from the parameter snapshot. The
// wobble phase is carried over from the previous material.
func KnotMaterial(params schema.Params, previous Material) Material {
	return Material{
		Color: params.Color,
		Wobble: Wobble{
			Factor: params.WobbleFactor,
			Speed:  params.WobbleSpeed,
			Phase:  previous.Wobble.Phase,
		},
	}
}

func KnotShape(params schema.Params) geometry.TorusKnot {
	return geometry.TorusKnot{
		Radius:          params.Radius,
		Tube:            params.Radius / 4,
		TubularSegments: 128,
		RadialSegments:  16,
		P:               2,
		Q:               3,
	}
}

// Update applies the per-frame rule of the object's kind and returns the
// updated object. The input is not modified.
func Update(object Object, tick FrameTick, params schema.Params) Object {
	switch object.Kind {
	case KindBox, KindTorus:
		object.Transform = Spin(object.Transform, tick)
	case KindSphere:
		object.Transform = Hover(object.Transform, object.Interaction, tick)
		object.Material = SphereMaterial(object.Interaction)
	case KindTorusKnot:
		object.Material = KnotMaterial(params, object.Material)
		object.Material.Wobble.Phase += tick.Delta * object.Material.Wobble.Speed
		object.Shape = KnotShape(params)
	}
	return object
}

// Settle applies the parts of the rule that depend only on the interaction
// state. Pointer callbacks use it so scale and color follow a click or hover
// without waiting for the next frame.
func Settle(object Object) Object {
	if object.Kind == KindSphere {
		object.Transform.Scale = releasedScale
		if object.Interaction.Clicked() {
			object.Transform.Scale = clickedScale
		}
		object.Material = SphereMaterial(object.Interaction)
	}
	return object
}
