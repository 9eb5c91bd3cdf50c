package scene

import (
	"github.com/google/uuid"

	"github.com/nobonobo/mesh-scene/geometry"
)

// Handle identifies an object in a Table.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindTorus
	KindTorusKnot
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindTorus:
		return "torus"
	case KindTorusKnot:
		return "torus-knot"
	default:
		return "unknown"
	}
}

// Interactive reports whether objects of this kind receive pointer events.
func (k Kind) Interactive() bool {
	return k == KindSphere
}

// Wobble describes the vertex wobble of a material. Phase advances with
// time at Speed; Factor scales the displacement.
type Wobble struct {
	Factor float64
	Speed  float64
	Phase  float64
}

type Material struct {
	Color     string
	Wireframe bool
	Wobble    Wobble
}

// Object is a single drawable entry of the scene.
type Object struct {
	Handle      Handle
	Kind        Kind
	Transform   Transform
	Interaction Interaction
	Material    Material
	Shape       geometry.Shape
}
