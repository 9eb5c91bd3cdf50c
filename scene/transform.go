package scene

import "github.com/mokiat/gomath/dprec"

// Transform is the drawable placement of an object. Values are copied in and
// out of update rules; rules never hold on to a Transform.
type Transform struct {
	Position  dprec.Vec3
	RotationX float64
	RotationY float64
	Scale     float64
}

func NewTransform(position dprec.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    1,
	}
}

// FrameTick carries the timing of a single rendered frame, in seconds.
type FrameTick struct {
	Elapsed float64
	Delta   float64
}

// Advance returns the tick that follows t after delta seconds.
func (t FrameTick) Advance(delta float64) FrameTick {
	return FrameTick{
		Elapsed: t.Elapsed + delta,
		Delta:   delta,
	}
}
