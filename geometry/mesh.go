// Package geometry builds meshes for the primitive shapes used by
// the scene: box, sphere, torus and torus knot.
//
// Arguments follow the conventions of the common web 3D libraries, so a
// torus knot built from (radius, tube, tubularSegments, radialSegments, p, q)
// has the same shape and vertex order one would get there.
package geometry

import "github.com/mokiat/gomath/dprec"

// Edge connects two vertices by index.
type Edge [2]int

// Face is a triangle given by three vertex indices, counter-clockwise when
// seen from outside.
type Face [3]int

// Mesh is a mesh in object space. Edges outline it; Faces fill it.
type Mesh struct {
	Vertices []dprec.Vec3
	Edges    []Edge
	Faces    []Face
}

// BoundingRadius returns the distance from the origin to the farthest
// vertex.
func (m Mesh) BoundingRadius() float64 {
	var result float64
	for _, vertex := range m.Vertices {
		result = max(result, vertex.Length())
	}
	return result
}

// Shape is a parametric description that can be turned into a Mesh.
type Shape interface {
	Build() Mesh
}

type edgeSet map[Edge]struct{}

func (s edgeSet) add(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	s[Edge{a, b}] = struct{}{}
}

// grid connects a (rows+1) x (cols+1) vertex lattice starting at offset
// with horizontal and vertical lines, the way a wireframe material draws a
// segmented surface.
func (s edgeSet) grid(offset, rows, cols int) {
	stride := cols + 1
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			index := offset + j*stride + i
			if i < cols {
				s.add(index, index+1)
			}
			if j < rows {
				s.add(index, index+stride)
			}
		}
	}
}

// gridFaces splits every cell of the same lattice into two triangles.
func gridFaces(offset, rows, cols int) []Face {
	stride := cols + 1
	result := make([]Face, 0, rows*cols*2)
	for j := range rows {
		for i := range cols {
			a := offset + j*stride + i
			b := a + stride
			c := b + 1
			d := a + 1
			result = append(result, Face{a, b, c}, Face{a, c, d})
		}
	}
	return result
}

func (s edgeSet) edges() []Edge {
	result := make([]Edge, 0, len(s))
	for edge := range s {
		result = append(result, edge)
	}
	sortEdges(result)
	return result
}
