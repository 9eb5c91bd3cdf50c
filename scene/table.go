package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/mesh-scene/geometry"
	"github.com/nobonobo/mesh-scene/schema"
)

var ErrUnknownHandle = errors.New("unknown object handle")

// ObjectInfo describes an object to be added to a Table.
type ObjectInfo struct {
	Kind     Kind
	Position dprec.Vec3
	Shape    geometry.Shape
	Material Material
}

// Table holds every object of a scene. It is owned by the render loop:
// objects are mutated only from Tick and from the pointer callbacks, all of
// which are called on the same goroutine.
type Table struct {
	objects map[Handle]*Object
	order   []Handle
}

func NewTable() *Table {
	return &Table{
		objects: make(map[Handle]*Object),
	}
}

func (t *Table) Add(info ObjectInfo) Handle {
	handle := Handle(uuid.New())
	object := Settle(Object{
		Handle:    handle,
		Kind:      info.Kind,
		Transform: NewTransform(info.Position),
		Material:  info.Material,
		Shape:     info.Shape,
	})
	t.objects[handle] = &object
	t.order = append(t.order, handle)
	return handle
}

func (t *Table) Remove(handle Handle) error {
	if _, ok := t.objects[handle]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}
	delete(t.objects, handle)
	t.order = slices.DeleteFunc(t.order, func(candidate Handle) bool {
		return candidate == handle
	})
	return nil
}

// Get returns a copy of the object.
func (t *Table) Get(handle Handle) (Object, bool) {
	object, ok := t.objects[handle]
	if !ok {
		return Object{}, false
	}
	return *object, true
}

func (t *Table) Len() int {
	return len(t.order)
}

// Objects returns copies of all objects in insertion order.
func (t *Table) Objects() []Object {
	result := make([]Object, 0, len(t.order))
	for _, handle := range t.order {
		result = append(result, *t.objects[handle])
	}
	return result
}

// Tick advances every object by one frame using the given parameter
// snapshot.
func (t *Table) Tick(tick FrameTick, params schema.Params) {
	for _, handle := range t.order {
		object := t.objects[handle]
		*object = Update(*object, tick, params)
	}
}

// PointerEnter marks the object as hovered. The returned flag reports
// whether the event should stop propagating to objects behind it.
func (t *Table) PointerEnter(handle Handle) (bool, error) {
	object, err := t.lookup(handle)
	if err != nil {
		return false, err
	}
	object.Interaction = object.Interaction.Enter()
	*object = Settle(*object)
	return object.Kind.Interactive(), nil
}

func (t *Table) PointerLeave(handle Handle) error {
	object, err := t.lookup(handle)
	if err != nil {
		return err
	}
	object.Interaction = object.Interaction.Leave()
	*object = Settle(*object)
	return nil
}

func (t *Table) Click(handle Handle) error {
	object, err := t.lookup(handle)
	if err != nil {
		return err
	}
	object.Interaction = object.Interaction.Click()
	*object = Settle(*object)
	return nil
}

func (t *Table) lookup(handle Handle) (*Object, error) {
	object, ok := t.objects[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}
	return object, nil
}
