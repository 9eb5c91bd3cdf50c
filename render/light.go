package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/mesh-scene/schema"
)

const (
	ambientLevel = 0.35
	lightGain    = 0.4
	lightTint    = 0.5
	edgeLevel    = 0.6
)

type lighting struct {
	level float64
	tint  colorful.Color
}

func newLighting(params schema.Params) lighting {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return lighting{
		level: ambientLevel + lightGain*params.LightIntensity,
		tint:  white.BlendRgb(lightColor(params), lightTint),
	}
}

func lightColor(params schema.Params) colorful.Color {
	result, err := schema.ParseColor(params.LightColor)
	if err != nil {
		return schema.MustParseColor("white")
	}
	return result
}

// Shade returns the color an object of the given material color has under
// the light described by params.
func Shade(color string, params schema.Params) colorful.Color {
	return newLighting(params).shade(color)
}

// Emit is the emit color of the scene's directional light, in linear
// space.
func Emit(params schema.Params) dprec.Vec3 {
	r, g, b := lightColor(params).LinearRgb()
	return dprec.Vec3Prod(dprec.NewVec3(r, g, b), params.LightIntensity)
}

func (l lighting) shade(color string) colorful.Color {
	base, err := schema.ParseColor(color)
	if err != nil {
		base = schema.MustParseColor("white")
	}
	return colorful.Color{
		R: base.R * l.tint.R * l.level,
		G: base.G * l.tint.G * l.level,
		B: base.B * l.tint.B * l.level,
	}.Clamped()
}

// edge darkens a fill color for the outline drawn over a solid surface.
func edge(fill colorful.Color) colorful.Color {
	return colorful.Color{
		R: fill.R * edgeLevel,
		G: fill.G * edgeLevel,
		B: fill.B * edgeLevel,
	}
}
