package render

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/scene"
	"github.com/nobonobo/mesh-scene/schema"
)

type recordedLine struct {
	from, to dprec.Vec3
	color    colorful.Color
}

type recordingTarget struct {
	events    []string
	instances []*recordingInstance
	lines     []recordedLine
	camera    Camera
	emit      dprec.Vec3
}

func (t *recordingTarget) CreateMesh(mesh geometry.Mesh, solid bool) Instance {
	t.events = append(t.events, "mesh")
	instance := &recordingInstance{mesh: mesh, solid: solid}
	t.instances = append(t.instances, instance)
	return instance
}

func (t *recordingTarget) ResetLines() {
	t.events = append(t.events, "reset")
	t.lines = nil
}

func (t *recordingTarget) Line(from, to dprec.Vec3, color colorful.Color) {
	t.events = append(t.events, "line")
	t.lines = append(t.lines, recordedLine{from: from, to: to, color: color})
}

func (t *recordingTarget) SetCamera(camera Camera) { t.camera = camera }
func (t *recordingTarget) SetLight(emit dprec.Vec3) { t.emit = emit }

func (t *recordingTarget) live() int {
	count := 0
	for _, instance := range t.instances {
		if !instance.deleted {
			count++
		}
	}
	return count
}

type recordingInstance struct {
	mesh    geometry.Mesh
	solid   bool
	matrix  dprec.Mat4
	fill    colorful.Color
	edge    colorful.Color
	deleted bool
}

func (i *recordingInstance) SetMatrix(matrix dprec.Mat4) { i.matrix = matrix }

func (i *recordingInstance) SetColors(fill, edge colorful.Color) {
	i.fill = fill
	i.edge = edge
}

func (i *recordingInstance) Delete() { i.deleted = true }

func assertVec3(t *testing.T, expected, actual dprec.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
	assert.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func TestCameraOrbitClamps(t *testing.T) {
	camera := DefaultCamera()
	camera.Orbit(0, -10000)
	assert.InDelta(t, maxPolar, camera.Polar, 1e-9)
	camera.Orbit(0, 10000)
	assert.InDelta(t, minPolar, camera.Polar, 1e-9)

	camera.Zoom(1000)
	assert.Equal(t, minDistance, camera.Distance)
	camera.Zoom(-1000)
	assert.Equal(t, maxDistance, camera.Distance)
}

func TestCameraLooksAtTarget(t *testing.T) {
	camera := DefaultCamera()
	camera.Target = dprec.NewVec3(1, 2, 3)
	camera.Orbit(140, -35)

	forward := dprec.QuatVec3Rotation(camera.Rotation(), dprec.NewVec3(0, 0, -1))
	expected := dprec.UnitVec3(dprec.Vec3Diff(camera.Target, camera.Eye()))
	assertVec3(t, expected, forward)

	matrix := camera.Matrix()
	assertVec3(t, camera.Eye(), dprec.Mat4Vec3Transformation(matrix, dprec.ZeroVec3()))
}

func TestToWorld(t *testing.T) {
	transform := scene.Transform{
		Position:  dprec.NewVec3(1, 0, 0),
		RotationY: math.Pi / 2,
		Scale:     2,
	}
	// +X rotated a quarter turn around Y points to -Z
	assertVec3(t, dprec.NewVec3(1, 0, -2), ToWorld(dprec.NewVec3(1, 0, 0), transform))
}

func TestWobbleKeepsHeight(t *testing.T) {
	vertex := dprec.NewVec3(1, 0.5, -2)
	assert.Equal(t, vertex, Wobble(vertex, scene.Wobble{}))

	twisted := Wobble(vertex, scene.Wobble{Factor: 1, Phase: 0.3})
	assert.Equal(t, vertex.Y, twisted.Y)
	assert.InDelta(t, math.Hypot(vertex.X, vertex.Z), math.Hypot(twisted.X, twisted.Z), 1e-9)
	assert.NotEqual(t, vertex, twisted)
}

func TestSyncPlacesRigidObjects(t *testing.T) {
	params := schema.DefaultParams()
	table, err := scene.Compose(scene.VariantBasic, params)
	require.NoError(t, err)

	renderer := NewRenderer()
	target := &recordingTarget{}
	renderer.Sync(target, table, params)

	require.Len(t, target.instances, table.Len())
	assert.Empty(t, target.lines)
	for i, object := range table.Objects() {
		instance := target.instances[i]
		assert.True(t, instance.solid)
		assert.Equal(t, ModelMatrix(object.Transform), instance.matrix)
		assert.Equal(t, Shade(object.Material.Color, params), instance.fill)
		assert.Equal(t, edge(instance.fill), instance.edge)
	}

	table.Tick(scene.FrameTick{Elapsed: 0.5, Delta: 0.5}, params)
	renderer.Sync(target, table, params)
	assert.Len(t, target.instances, table.Len(), "meshes are reused across frames")
	for i, object := range table.Objects() {
		assert.Equal(t, ModelMatrix(object.Transform), target.instances[i].matrix)
	}
}

func TestSyncWireframeUsesOneColor(t *testing.T) {
	table := scene.NewTable()
	table.Add(scene.ObjectInfo{Kind: scene.KindSphere, Shape: geometry.DefaultSphere()})

	target := &recordingTarget{}
	NewRenderer().Sync(target, table, schema.DefaultParams())

	require.Len(t, target.instances, 1)
	instance := target.instances[0]
	assert.False(t, instance.solid)
	assert.Equal(t, instance.fill, instance.edge)
}

func TestSyncQueuesWobblingEdgesAfterReset(t *testing.T) {
	params := schema.DefaultParams()
	table, err := scene.Compose(scene.VariantInteractive, params)
	require.NoError(t, err)

	renderer := NewRenderer()
	target := &recordingTarget{}
	renderer.Sync(target, table, params)

	knot := scene.KnotShape(params).Build()
	require.Len(t, target.lines, len(knot.Edges))
	expected := Shade(params.Color, params)
	for _, line := range target.lines {
		assert.Equal(t, expected, line.color)
	}

	firstLine := -1
	for i, event := range target.events {
		if event == "line" {
			firstLine = i
			break
		}
	}
	require.Positive(t, firstLine)
	assert.Contains(t, target.events[:firstLine], "reset", "lines are reset before the first one is queued")

	renderer.Sync(target, table, params)
	assert.Len(t, target.lines, len(knot.Edges), "lines do not pile up across frames")
}

func TestSyncRecreatesChangedShape(t *testing.T) {
	params := schema.DefaultParams()
	params.WobbleFactor = 0
	table, err := scene.Compose(scene.VariantInteractive, params)
	require.NoError(t, err)

	renderer := NewRenderer()
	target := &recordingTarget{}
	renderer.Sync(target, table, params)
	require.Len(t, target.instances, 2)
	assert.Empty(t, target.lines)

	params.Radius = 5
	table.Tick(scene.FrameTick{Delta: 0.1}, params)
	renderer.Sync(target, table, params)

	require.Len(t, target.instances, 3)
	assert.True(t, target.instances[1].deleted)
	assert.Equal(t, 2, target.live())
}

func TestSyncDeletesRemovedObjects(t *testing.T) {
	params := schema.DefaultParams()
	table, err := scene.Compose(scene.VariantBasic, params)
	require.NoError(t, err)

	renderer := NewRenderer()
	target := &recordingTarget{}
	renderer.Sync(target, table, params)

	removed := table.Objects()[0].Handle
	require.NoError(t, table.Remove(removed))
	renderer.Sync(target, table, params)
	assert.True(t, target.instances[0].deleted)
	assert.Equal(t, table.Len(), target.live())

	renderer.Release()
	assert.Zero(t, target.live())
}

func TestSyncDrivesLight(t *testing.T) {
	params := schema.DefaultParams()
	params.LightColor = "red"
	params.LightIntensity = 2

	target := &recordingTarget{}
	renderer := NewRenderer()
	renderer.Camera.Orbit(50, 0)
	renderer.Sync(target, scene.NewTable(), params)

	assert.Equal(t, Emit(params), target.emit)
	assert.InDelta(t, 2, target.emit.X, 1e-9)
	assert.InDelta(t, 0, target.emit.Y, 1e-9)
	assert.Equal(t, renderer.Camera, target.camera)
}

func TestHitTestOrdersByDistance(t *testing.T) {
	table := scene.NewTable()
	far := table.Add(scene.ObjectInfo{Kind: scene.KindSphere, Position: dprec.NewVec3(0, 0, -3), Shape: geometry.DefaultSphere()})
	near := table.Add(scene.ObjectInfo{Kind: scene.KindSphere, Position: dprec.NewVec3(0, 0, 3), Shape: geometry.DefaultSphere()})
	table.Add(scene.ObjectInfo{Kind: scene.KindBox, Position: dprec.NewVec3(6, 0, 0), Shape: geometry.DefaultBox()})

	renderer := NewRenderer()
	origin := dprec.NewVec3(0, 0, 10)
	assert.Equal(t, []scene.Handle{near, far}, renderer.HitTest(table, origin, dprec.NewVec3(0, 0, -10)))
	assert.Empty(t, renderer.HitTest(table, origin, dprec.NewVec3(0, 10, 0)))
	assert.Empty(t, renderer.HitTest(table, origin, origin))
}

func TestHitTestFollowsScale(t *testing.T) {
	table := scene.NewTable()
	sphere := table.Add(scene.ObjectInfo{Kind: scene.KindSphere, Shape: geometry.DefaultSphere()})

	renderer := NewRenderer()
	origin := dprec.NewVec3(1.5, 0, 10)
	target := dprec.NewVec3(1.5, 0, -10)

	assert.Empty(t, renderer.HitTest(table, origin, target))
	require.NoError(t, table.Click(sphere))
	assert.Equal(t, []scene.Handle{sphere}, renderer.HitTest(table, origin, target))
}

func TestShade(t *testing.T) {
	dark := schema.DefaultParams()
	dark.LightIntensity = 0
	bright := schema.DefaultParams()
	bright.LightIntensity = 5

	low := Shade("white", dark)
	high := Shade("white", bright)
	assert.InDelta(t, ambientLevel, low.R, 1e-9)
	assert.InDelta(t, 1.0, high.R, 1e-9)

	tinted := schema.DefaultParams()
	tinted.LightColor = "red"
	tinted.LightIntensity = 1
	color := Shade("white", tinted)
	assert.Greater(t, color.R, color.G)
}
