package scene

import (
	"fmt"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/schema"
)

type Variant string

const (
	// VariantBasic shows time-driven boxes and a torus.
	VariantBasic Variant = "basic"
	// VariantInteractive shows a hoverable sphere and a parameter-driven
	// torus knot.
	VariantInteractive Variant = "interactive"
)

// Compose fills a new table with the objects of the given variant.
func Compose(variant Variant, params schema.Params) (*Table, error) {
	table := NewTable()
	switch variant {
	case VariantBasic:
		table.Add(ObjectInfo{
			Kind:     KindBox,
			Position: dprec.NewVec3(-2.5, 0, 0),
			Shape:    geometry.DefaultBox(),
			Material: Material{Color: "orange"},
		})
		table.Add(ObjectInfo{
			Kind:     KindTorus,
			Position: dprec.NewVec3(0, 0, 0),
			Shape:    geometry.DefaultTorus(),
			Material: Material{Color: "hotpink"},
		})
		table.Add(ObjectInfo{
			Kind:     KindBox,
			Position: dprec.NewVec3(2.5, 0, 0),
			Shape:    geometry.DefaultBox(),
			Material: Material{Color: "orange"},
		})
	case VariantInteractive:
		table.Add(ObjectInfo{
			Kind:     KindSphere,
			Position: dprec.NewVec3(-3, 0, 0),
			Shape:    geometry.DefaultSphere(),
		})
		table.Add(ObjectInfo{
			Kind:     KindTorusKnot,
			Position: dprec.NewVec3(3, 0, -4),
			Shape:    KnotShape(params),
			Material: KnotMaterial(params, Material{}),
		})
	default:
		return nil, fmt.Errorf("unknown scene variant %q", variant)
	}
	return table, nil
}
