package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/scene"
	"github.com/nobonobo/mesh-scene/schema"
)

const meshCacheLimit = 32

// Target is the engine side of a Renderer. It owns the meshes, lines,
// camera and light that end up on screen.
type Target interface {
	// CreateMesh uploads a mesh. Solid meshes get a filled surface below
	// their edges.
	CreateMesh(mesh geometry.Mesh, solid bool) Instance

	// ResetLines drops the lines queued during the previous frame.
	ResetLines()

	// Line queues a world-space line for the current frame.
	Line(from, to dprec.Vec3, color colorful.Color)

	SetCamera(camera Camera)
	SetLight(emit dprec.Vec3)
}

// Instance is a mesh placed in the engine scene.
type Instance interface {
	SetMatrix(matrix dprec.Mat4)
	SetColors(fill, edge colorful.Color)
	Delete()
}

type placement struct {
	shape    geometry.Shape
	solid    bool
	instance Instance
}

// Renderer mirrors a scene table into a Target once per frame.
//
// Rigid objects become engine meshes that are built once and then only
// moved. Objects with a wobbling material change shape every frame, so
// their edges are queued as lines instead.
type Renderer struct {
	Camera Camera

	meshes     map[geometry.Shape]geometry.Mesh
	placements map[scene.Handle]*placement
}

func NewRenderer() *Renderer {
	return &Renderer{
		Camera:     DefaultCamera(),
		meshes:     make(map[geometry.Shape]geometry.Mesh),
		placements: make(map[scene.Handle]*placement),
	}
}

// Sync brings target in line with the table and the parameter snapshot.
func (r *Renderer) Sync(target Target, table *scene.Table, params schema.Params) {
	light := newLighting(params)
	target.SetCamera(r.Camera)
	target.SetLight(Emit(params))
	target.ResetLines()

	present := make(map[scene.Handle]struct{}, table.Len())
	for _, object := range table.Objects() {
		present[object.Handle] = struct{}{}

		mesh := r.mesh(object.Shape)
		if len(mesh.Edges) == 0 {
			r.release(object.Handle)
			continue
		}
		fill := light.shade(object.Material.Color)

		if wobble := object.Material.Wobble; wobble.Factor != 0 {
			r.release(object.Handle)
			for _, e := range mesh.Edges {
				target.Line(
					ToWorld(Wobble(mesh.Vertices[e[0]], wobble), object.Transform),
					ToWorld(Wobble(mesh.Vertices[e[1]], wobble), object.Transform),
					fill,
				)
			}
			continue
		}

		solid := !object.Material.Wireframe
		p := r.place(target, object.Handle, object.Shape, solid, mesh)
		p.instance.SetMatrix(ModelMatrix(object.Transform))
		if solid {
			p.instance.SetColors(fill, edge(fill))
		} else {
			p.instance.SetColors(fill, fill)
		}
	}

	for handle := range r.placements {
		if _, ok := present[handle]; !ok {
			r.release(handle)
		}
	}
}

// Release deletes every mesh the renderer created.
func (r *Renderer) Release() {
	for handle := range r.placements {
		r.release(handle)
	}
}

func (r *Renderer) place(target Target, handle scene.Handle, shape geometry.Shape, solid bool, mesh geometry.Mesh) *placement {
	if p, ok := r.placements[handle]; ok {
		if p.shape == shape && p.solid == solid {
			return p
		}
		r.release(handle)
	}
	p := &placement{
		shape:    shape,
		solid:    solid,
		instance: target.CreateMesh(mesh, solid),
	}
	r.placements[handle] = p
	return p
}

func (r *Renderer) release(handle scene.Handle) {
	if p, ok := r.placements[handle]; ok {
		p.instance.Delete()
		delete(r.placements, handle)
	}
}

// HitTest returns the objects whose bounding sphere the ray from origin
// through target crosses, nearest first.
func (r *Renderer) HitTest(table *scene.Table, origin, target dprec.Vec3) []scene.Handle {
	direction := dprec.Vec3Diff(target, origin)
	if direction.Length() == 0 {
		return nil
	}
	direction = dprec.UnitVec3(direction)

	type hit struct {
		handle   scene.Handle
		distance float64
	}
	var hits []hit
	for _, object := range table.Objects() {
		radius := r.mesh(object.Shape).BoundingRadius() * object.Transform.Scale
		toCenter := dprec.Vec3Diff(object.Transform.Position, origin)
		along := dprec.Vec3Dot(toCenter, direction)
		missSqr := toCenter.SqrLength() - along*along
		if missSqr > radius*radius {
			continue
		}
		half := math.Sqrt(radius*radius - missSqr)
		if along+half < 0 {
			continue
		}
		hits = append(hits, hit{
			handle:   object.Handle,
			distance: max(0, along-half),
		})
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result := make([]scene.Handle, len(hits))
	for i, h := range hits {
		result[i] = h.handle
	}
	return result
}

func (r *Renderer) mesh(shape geometry.Shape) geometry.Mesh {
	if shape == nil {
		return geometry.Mesh{}
	}
	if mesh, ok := r.meshes[shape]; ok {
		return mesh
	}
	if len(r.meshes) >= meshCacheLimit {
		clear(r.meshes)
	}
	mesh := shape.Build()
	r.meshes[shape] = mesh
	return mesh
}

// ModelMatrix is the world transform of an object: scale, then rotation
// around Y, then around X, then translation.
func ModelMatrix(transform scene.Transform) dprec.Mat4 {
	rotation := dprec.QuatProd(
		dprec.RotationQuat(dprec.Radians(transform.RotationX), dprec.BasisXVec3()),
		dprec.RotationQuat(dprec.Radians(transform.RotationY), dprec.BasisYVec3()),
	)
	scale := transform.Scale
	return dprec.TRSMat4(transform.Position, rotation, dprec.NewVec3(scale, scale, scale))
}

func ToWorld(vertex dprec.Vec3, transform scene.Transform) dprec.Vec3 {
	return dprec.Mat4Vec3Transformation(ModelMatrix(transform), vertex)
}

// Wobble twists a vertex around the Y axis by an angle that oscillates with
// the vertex height and the wobble phase.
func Wobble(vertex dprec.Vec3, wobble scene.Wobble) dprec.Vec3 {
	if wobble.Factor == 0 {
		return vertex
	}
	theta := math.Sin(wobble.Phase+vertex.Y) / 2 * wobble.Factor
	c, s := math.Cos(theta), math.Sin(theta)
	return dprec.NewVec3(
		c*vertex.X+s*vertex.Z,
		vertex.Y,
		-s*vertex.X+c*vertex.Z,
	)
}
