package scene

import (
	"math"
	"testing"

	"github.com/mokiat/gomath/dprec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/schema"
)

func TestSpin(t *testing.T) {
	start := Transform{
		Position:  dprec.NewVec3(1, 2, 3),
		RotationX: 0.5,
		RotationY: -1,
		Scale:     1,
	}
	for _, delta := range []float64{0, 0.016, 0.1, 1.5} {
		for _, elapsed := range []float64{0, 1, math.Pi / 2, 12.3} {
			got := Spin(start, FrameTick{Elapsed: elapsed, Delta: delta})

			assert.InDelta(t, start.RotationX+2*delta, got.RotationX, 1e-12)
			assert.InDelta(t, start.RotationY+2*delta, got.RotationY, 1e-12)
			assert.InDelta(t, math.Sin(elapsed)*2, got.Position.Z, 1e-12)
			assert.Equal(t, start.Position.X, got.Position.X)
			assert.Equal(t, start.Position.Y, got.Position.Y)

			again := Spin(got, FrameTick{Elapsed: elapsed, Delta: 0})
			assert.Equal(t, got.Position.Z, again.Position.Z, "sway depends on elapsed time only")
		}
	}
}

func TestHoverSpeed(t *testing.T) {
	table := NewTable()
	handle := table.Add(ObjectInfo{Kind: KindSphere, Shape: geometry.DefaultSphere()})
	params := schema.DefaultParams()
	const delta = 0.25

	before, _ := table.Get(handle)
	_, err := table.PointerEnter(handle)
	require.NoError(t, err)
	table.Tick(FrameTick{Elapsed: delta, Delta: delta}, params)
	after, _ := table.Get(handle)
	assert.InDelta(t, 1.0*delta, after.Transform.RotationY-before.Transform.RotationY, 1e-12)

	require.NoError(t, table.PointerLeave(handle))
	table.Tick(FrameTick{Elapsed: 2 * delta, Delta: delta}, params)
	final, _ := table.Get(handle)
	assert.InDelta(t, 0.2*delta, final.Transform.RotationY-after.Transform.RotationY, 1e-12)
}

func TestClickTogglesScale(t *testing.T) {
	table := NewTable()
	handle := table.Add(ObjectInfo{Kind: KindSphere, Shape: geometry.DefaultSphere()})

	original, _ := table.Get(handle)
	assert.Equal(t, 1.0, original.Transform.Scale)

	require.NoError(t, table.Click(handle))
	clicked, _ := table.Get(handle)
	assert.True(t, clicked.Interaction.Clicked())
	assert.Equal(t, 2.0, clicked.Transform.Scale)

	require.NoError(t, table.Click(handle))
	restored, _ := table.Get(handle)
	assert.False(t, restored.Interaction.Clicked())
	assert.Equal(t, original.Transform.Scale, restored.Transform.Scale)
}

func TestSphereMaterial(t *testing.T) {
	table := NewTable()
	handle := table.Add(ObjectInfo{Kind: KindSphere, Shape: geometry.DefaultSphere()})
	params := schema.DefaultParams()
	tick := FrameTick{}

	steps := []struct {
		action func()
		color  string
	}{
		{func() {}, "cyan"},
		{func() { _, _ = table.PointerEnter(handle) }, "red"},
		{func() { _ = table.Click(handle) }, "red"},
		{func() { _ = table.PointerLeave(handle) }, "cyan"},
		{func() { _ = table.Click(handle) }, "cyan"},
	}
	for _, step := range steps {
		step.action()
		object, _ := table.Get(handle)
		assert.Equal(t, step.color, object.Material.Color)
		assert.True(t, object.Material.Wireframe)

		tick = tick.Advance(1.0 / 60)
		table.Tick(tick, params)
		object, _ = table.Get(handle)
		assert.Equal(t, step.color, object.Material.Color)
		assert.True(t, object.Material.Wireframe)
	}
}

func TestTorusKnotFollowsParams(t *testing.T) {
	params := schema.DefaultParams()
	table, err := Compose(VariantInteractive, params)
	require.NoError(t, err)

	var handle Handle
	for _, object := range table.Objects() {
		if object.Kind == KindTorusKnot {
			handle = object.Handle
		}
	}
	before, ok := table.Get(handle)
	require.True(t, ok)

	params.Radius = 7.5
	params.Color = "gold"
	table.Tick(FrameTick{Elapsed: 42, Delta: 0.5}, params)

	after, ok := table.Get(handle)
	require.True(t, ok)
	assert.Equal(t, handle, after.Handle)
	assert.Equal(t, 7.5, after.Shape.(geometry.TorusKnot).Radius)
	assert.Equal(t, "gold", after.Material.Color)
	assert.Equal(t, before.Transform, after.Transform)
	assert.InDelta(t, 0.5*params.WobbleSpeed, after.Material.Wobble.Phase, 1e-12)
}

func TestInteractionStates(t *testing.T) {
	state := InteractionIdle
	assert.Equal(t, "idle", state.String())

	state = state.Enter()
	assert.Equal(t, InteractionHovered, state)
	state = state.Click()
	assert.Equal(t, InteractionHoveredClicked, state)
	assert.Equal(t, "hovered+clicked", state.String())
	state = state.Leave()
	assert.Equal(t, InteractionClicked, state)
	state = state.Leave()
	assert.Equal(t, InteractionClicked, state)
	state = state.Click()
	assert.Equal(t, InteractionIdle, state)
}
