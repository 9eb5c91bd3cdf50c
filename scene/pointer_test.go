package scene

import (
	"testing"

	"github.com/mokiat/gomath/dprec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/mesh-scene/geometry"
)

func newPointerFixture(t *testing.T) (*Table, *Pointer, Handle, Handle, Handle) {
	t.Helper()
	table := NewTable()
	front := table.Add(ObjectInfo{Kind: KindSphere, Position: dprec.NewVec3(0, 0, 1), Shape: geometry.DefaultSphere()})
	back := table.Add(ObjectInfo{Kind: KindSphere, Position: dprec.NewVec3(0, 0, -1), Shape: geometry.DefaultSphere()})
	box := table.Add(ObjectInfo{Kind: KindBox, Shape: geometry.DefaultBox()})
	return table, NewPointer(table), front, back, box
}

func hovered(t *testing.T, table *Table, handle Handle) bool {
	t.Helper()
	object, ok := table.Get(handle)
	require.True(t, ok)
	return object.Interaction.Hovered()
}

func TestPointerEnterStopsAtFrontObject(t *testing.T) {
	table, pointer, front, back, box := newPointerFixture(t)

	require.NoError(t, pointer.Move([]Handle{box, front, back}))
	assert.True(t, hovered(t, table, front))
	assert.False(t, hovered(t, table, back))
	assert.Equal(t, []Handle{front}, pointer.Hovered())

	// moving within the same object does not re-enter or leak to the back
	require.NoError(t, pointer.Move([]Handle{front, back}))
	assert.True(t, hovered(t, table, front))
	assert.False(t, hovered(t, table, back))
}

func TestPointerSwitchesTarget(t *testing.T) {
	table, pointer, front, back, _ := newPointerFixture(t)

	require.NoError(t, pointer.Move([]Handle{back}))
	assert.True(t, hovered(t, table, back))

	// front object slides in between pointer and back object
	require.NoError(t, pointer.Move([]Handle{front, back}))
	assert.True(t, hovered(t, table, front))
	assert.False(t, hovered(t, table, back))

	require.NoError(t, pointer.Leave())
	assert.False(t, hovered(t, table, front))
	assert.Empty(t, pointer.Hovered())
}

func TestPointerClick(t *testing.T) {
	table, pointer, front, _, _ := newPointerFixture(t)

	pointer.Press([]Handle{front}, 10, 10)
	require.NoError(t, pointer.Release([]Handle{front}, 10, 10))
	object, _ := table.Get(front)
	assert.True(t, object.Interaction.Clicked())
	assert.Equal(t, 2.0, object.Transform.Scale)

	// press on the object, release elsewhere
	pointer.Press([]Handle{front}, 10, 10)
	require.NoError(t, pointer.Release(nil, 10, 10))
	object, _ = table.Get(front)
	assert.True(t, object.Interaction.Clicked())

	pointer.Press([]Handle{front}, 10, 10)
	require.NoError(t, pointer.Release([]Handle{front}, 10, 10))
	object, _ = table.Get(front)
	assert.False(t, object.Interaction.Clicked())
	assert.Equal(t, 1.0, object.Transform.Scale)
}

func TestPointerIgnoresRemovedObjects(t *testing.T) {
	table, pointer, front, _, _ := newPointerFixture(t)

	require.NoError(t, pointer.Move([]Handle{front}))
	require.NoError(t, table.Remove(front))
	assert.NoError(t, pointer.Leave())
	assert.Empty(t, pointer.Hovered())
}

func TestPointerDragDoesNotClick(t *testing.T) {
	table, pointer, front, _, _ := newPointerFixture(t)

	pointer.Press([]Handle{front}, 100, 100)
	_, _, ok := pointer.Drag(103, 100)
	assert.False(t, ok, "small movements stay within the click tolerance")

	dx, dy, ok := pointer.Drag(110, 100)
	require.True(t, ok)
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, 0.0, dy)
	assert.True(t, pointer.Dragging())

	require.NoError(t, pointer.Release([]Handle{front}, 110, 100))
	object, _ := table.Get(front)
	assert.False(t, object.Interaction.Clicked())
	assert.False(t, pointer.Dragging())

	// the drag is over, the next press can click again
	pointer.Press([]Handle{front}, 100, 100)
	require.NoError(t, pointer.Release([]Handle{front}, 102, 100))
	object, _ = table.Get(front)
	assert.True(t, object.Interaction.Clicked())
}

func TestPointerReleaseFarAwayIsADrag(t *testing.T) {
	table, pointer, front, _, _ := newPointerFixture(t)

	// no move events between press and release
	pointer.Press([]Handle{front}, 0, 0)
	require.NoError(t, pointer.Release([]Handle{front}, 0, 10))
	object, _ := table.Get(front)
	assert.False(t, object.Interaction.Clicked())
}

func TestPointerDragReportsIncrements(t *testing.T) {
	_, pointer, _, _, _ := newPointerFixture(t)

	_, _, ok := pointer.Drag(50, 50)
	assert.False(t, ok, "no button held")

	pointer.Press(nil, 0, 0)
	dx, dy, ok := pointer.Drag(0, 6)
	require.True(t, ok)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 6.0, dy)

	dx, dy, ok = pointer.Drag(1, 7)
	require.True(t, ok)
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, 1.0, dy)

	require.NoError(t, pointer.Leave())
	_, _, ok = pointer.Drag(20, 20)
	assert.False(t, ok)
}
