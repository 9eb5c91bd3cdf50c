package geometry

import (
	"cmp"
	"math"
	"slices"

	"github.com/mokiat/gomath/dprec"
)

func sortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
}

// Box is an axis-aligned box centered at the origin.
type Box struct {
	Width  float64
	Height float64
	Depth  float64
}

func DefaultBox() Box {
	return Box{Width: 1, Height: 1, Depth: 1}
}

func (b Box) Build() Mesh {
	hx, hy, hz := b.Width/2, b.Height/2, b.Depth/2
	vertices := make([]dprec.Vec3, 0, 8)
	for _, z := range []float64{-hz, hz} {
		for _, y := range []float64{-hy, hy} {
			for _, x := range []float64{-hx, hx} {
				vertices = append(vertices, dprec.NewVec3(x, y, z))
			}
		}
	}
	// vertex index bits: x=1, y=2, z=4
	edges := edgeSet{}
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges.add(i, i|bit)
			}
		}
	}
	return Mesh{
		Vertices: vertices,
		Edges:    edges.edges(),
		Faces:    boxFaces(),
	}
}

func boxFaces() []Face {
	quads := [][4]int{
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
	}
	result := make([]Face, 0, len(quads)*2)
	for _, q := range quads {
		result = append(result, Face{q[0], q[1], q[2]}, Face{q[0], q[2], q[3]})
	}
	return result
}

// Sphere is a UV sphere.
type Sphere struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

func DefaultSphere() Sphere {
	return Sphere{Radius: 1, WidthSegments: 32, HeightSegments: 16}
}

func (s Sphere) Build() Mesh {
	widthSegments := max(3, s.WidthSegments)
	heightSegments := max(2, s.HeightSegments)

	vertices := make([]dprec.Vec3, 0, (widthSegments+1)*(heightSegments+1))
	for y := 0; y <= heightSegments; y++ {
		v := float64(y) / float64(heightSegments)
		for x := 0; x <= widthSegments; x++ {
			u := float64(x) / float64(widthSegments)
			vertices = append(vertices, dprec.NewVec3(
				-s.Radius*math.Cos(u*2*math.Pi)*math.Sin(v*math.Pi),
				s.Radius*math.Cos(v*math.Pi),
				s.Radius*math.Sin(u*2*math.Pi)*math.Sin(v*math.Pi),
			))
		}
	}
	edges := edgeSet{}
	edges.grid(0, heightSegments, widthSegments)
	return Mesh{
		Vertices: vertices,
		Edges:    edges.edges(),
		Faces:    gridFaces(0, heightSegments, widthSegments),
	}
}

// Torus is a ring in the XY plane.
type Torus struct {
	Radius          float64
	Tube            float64
	RadialSegments  int
	TubularSegments int
}

func DefaultTorus() Torus {
	return Torus{Radius: 1, Tube: 0.4, RadialSegments: 12, TubularSegments: 48}
}

func (t Torus) Build() Mesh {
	radialSegments := max(2, t.RadialSegments)
	tubularSegments := max(3, t.TubularSegments)

	vertices := make([]dprec.Vec3, 0, (radialSegments+1)*(tubularSegments+1))
	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			vertices = append(vertices, dprec.NewVec3(
				(t.Radius+t.Tube*math.Cos(v))*math.Cos(u),
				(t.Radius+t.Tube*math.Cos(v))*math.Sin(u),
				t.Tube*math.Sin(v),
			))
		}
	}
	edges := edgeSet{}
	edges.grid(0, radialSegments, tubularSegments)
	return Mesh{
		Vertices: vertices,
		Edges:    edges.edges(),
		Faces:    gridFaces(0, radialSegments, tubularSegments),
	}
}

// TorusKnot is a (P,Q) knot wound around a torus of the given radius. P
// values below one are treated as one.
type TorusKnot struct {
	Radius          float64
	Tube            float64
	TubularSegments int
	RadialSegments  int
	P               int
	Q               int
}

func DefaultTorusKnot() TorusKnot {
	return TorusKnot{Radius: 1, Tube: 0.4, TubularSegments: 64, RadialSegments: 8, P: 2, Q: 3}
}

func (k TorusKnot) Build() Mesh {
	tubularSegments := max(3, k.TubularSegments)
	radialSegments := max(3, k.RadialSegments)
	k.P = max(1, k.P)

	vertices := make([]dprec.Vec3, 0, (tubularSegments+1)*(radialSegments+1))
	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * float64(k.P) * 2 * math.Pi

		p1 := k.curve(u)
		p2 := k.curve(u + 0.01)

		// Frenet-like frame along the curve
		tangent := dprec.Vec3Diff(p2, p1)
		bitangent := dprec.Vec3Cross(tangent, dprec.Vec3Sum(p2, p1))
		normal := dprec.Vec3Cross(bitangent, tangent)
		bitangent = dprec.UnitVec3(bitangent)
		normal = dprec.UnitVec3(normal)

		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments) * 2 * math.Pi
			cx := -k.Tube * math.Cos(v)
			cy := k.Tube * math.Sin(v)
			vertices = append(vertices, dprec.Vec3Sum(p1, dprec.Vec3Sum(
				dprec.Vec3Prod(normal, cx),
				dprec.Vec3Prod(bitangent, cy),
			)))
		}
	}
	edges := edgeSet{}
	edges.grid(0, tubularSegments, radialSegments)
	return Mesh{
		Vertices: vertices,
		Edges:    edges.edges(),
		Faces:    gridFaces(0, tubularSegments, radialSegments),
	}
}

func (k TorusKnot) curve(u float64) dprec.Vec3 {
	cu := math.Cos(u)
	su := math.Sin(u)
	quOverP := float64(k.Q) / float64(max(1, k.P)) * u
	cs := math.Cos(quOverP)
	return dprec.NewVec3(
		k.Radius*(2+cs)*0.5*cu,
		k.Radius*(2+cs)*su*0.5,
		k.Radius*math.Sin(quOverP)*0.5,
	)
}
