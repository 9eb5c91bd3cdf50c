package ui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/dtos"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game/graphics"
	lrender "github.com/mokiat/lacking/render"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/render"
)

// flatShaderSource colors every fragment with the material color. Shading
// is applied on the CPU side so the output matches the panel light model.
const flatShaderSource = `
	uniform (
		color vec4
	)

	func #fragment() {
		#color = color
	}
`

const (
	fillLayer = 0
	edgeLayer = 1
)

var _ render.Target = (*engineTarget)(nil)

// engineTarget places renderer output into a graphics scene.
type engineTarget struct {
	engine *graphics.Engine
	scene  *graphics.Scene
	camera *graphics.Camera
	light  *graphics.DirectionalLight
	shader *graphics.Shader
}

func newEngineTarget(engine *graphics.Engine, scene *graphics.Scene, camera *graphics.Camera, light *graphics.DirectionalLight) *engineTarget {
	return &engineTarget{
		engine: engine,
		scene:  scene,
		camera: camera,
		light:  light,
		shader: engine.CreateShader(graphics.ShaderInfo{
			ShaderType: graphics.ShaderTypeForward,
			SourceCode: flatShaderSource,
		}),
	}
}

func (t *engineTarget) CreateMesh(mesh geometry.Mesh, solid bool) render.Instance {
	edge := t.createMaterial("edge", edgeLayer)

	var (
		geometryInfo   graphics.MeshGeometryInfo
		definitionInfo graphics.MeshDefinitionInfo
		fill           *graphics.Material
	)
	if solid && len(mesh.Faces) > 0 {
		fill = t.createMaterial("fill", fillLayer)
		geometryInfo = solidGeometryInfo(mesh)
		definitionInfo = graphics.MeshDefinitionInfo{
			Materials: []*graphics.Material{fill, edge},
		}
	} else {
		builder := graphics.NewShapeBuilder()
		lines := builder.Wireframe(edge)
		for _, e := range mesh.Edges {
			lines.Line(dtos.Vec3(mesh.Vertices[e[0]]), dtos.Vec3(mesh.Vertices[e[1]]))
		}
		geometryInfo = builder.BuildGeometryInfo()
		definitionInfo = builder.BuildMeshDefinitionInfo(nil)
	}

	meshGeometry := t.engine.CreateMeshGeometry(geometryInfo)
	definitionInfo.Geometry = meshGeometry
	definition := t.engine.CreateMeshDefinition(definitionInfo)
	return &engineInstance{
		geometry:   meshGeometry,
		definition: definition,
		mesh: t.scene.CreateMesh(graphics.MeshInfo{
			Definition: definition,
		}),
		fill: fill,
		edge: edge,
	}
}

func (t *engineTarget) createMaterial(name string, layer int32) *graphics.Material {
	return t.engine.CreateMaterial(graphics.MaterialInfo{
		Name: name,
		ForwardPasses: []graphics.MaterialPassInfo{
			{
				Layer:      layer,
				Culling:    opt.V(lrender.CullModeNone),
				DepthTest:  opt.V(true),
				DepthWrite: opt.V(true),
				Shader:     t.shader,
			},
		},
	})
}

// solidGeometryInfo lays the mesh out as a triangle fragment followed by a
// line fragment over the same vertices.
func solidGeometryInfo(mesh geometry.Mesh) graphics.MeshGeometryInfo {
	builder := graphics.NewMeshGeometryBuilder(
		graphics.MeshGeometryBuilderWithCoords(),
	)
	base := builder.VertexOffset()
	for _, vertex := range mesh.Vertices {
		builder.Vertex().CoordVec3(dtos.Vec3(vertex))
	}

	fillOffset := builder.IndexOffset()
	for _, face := range mesh.Faces {
		builder.IndexTriangle(base+uint32(face[0]), base+uint32(face[1]), base+uint32(face[2]))
	}
	builder.Fragment(lrender.TopologyTriangleList, fillOffset, builder.IndexOffset()-fillOffset)

	edgeOffset := builder.IndexOffset()
	for _, e := range mesh.Edges {
		builder.IndexLine(base+uint32(e[0]), base+uint32(e[1]))
	}
	builder.Fragment(lrender.TopologyLineList, edgeOffset, builder.IndexOffset()-edgeOffset)

	return builder.BuildInfo()
}

func (t *engineTarget) ResetLines() {
	t.engine.Debug().Reset()
}

func (t *engineTarget) Line(from, to dprec.Vec3, color colorful.Color) {
	r, g, b := color.LinearRgb()
	t.engine.Debug().Line(from, to, dprec.NewVec3(r, g, b))
}

func (t *engineTarget) SetCamera(camera render.Camera) {
	t.camera.SetMatrix(camera.Matrix())
	t.camera.SetFoV(sprec.Degrees(float32(camera.FoV)))
}

func (t *engineTarget) SetLight(emit dprec.Vec3) {
	if t.light != nil {
		t.light.SetEmitColor(emit)
	}
}

type engineInstance struct {
	geometry   *graphics.MeshGeometry
	definition *graphics.MeshDefinition
	mesh       *graphics.Mesh
	fill       *graphics.Material
	edge       *graphics.Material
}

func (i *engineInstance) SetMatrix(matrix dprec.Mat4) {
	i.mesh.SetMatrix(matrix)
}

func (i *engineInstance) SetColors(fill, edge colorful.Color) {
	if i.fill != nil {
		i.fill.SetProperty("color", linearColor(fill))
	}
	i.edge.SetProperty("color", linearColor(edge))
}

func (i *engineInstance) Delete() {
	i.mesh.Delete()
	i.definition.Delete()
	i.geometry.Delete()
}

func linearColor(color colorful.Color) sprec.Vec4 {
	r, g, b := color.LinearRgb()
	return sprec.NewVec4(float32(r), float32(g), float32(b), 1.0)
}
