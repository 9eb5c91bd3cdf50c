package scene

import (
	"errors"
	"math"
	"slices"
)

// dragTolerance is how far, in pixels, the pointer may travel between press
// and release for the release to still count as a click.
const dragTolerance = 4.0

// Pointer turns raw hit-test results into enter, leave and click callbacks
// on a Table.
//
// Hits are passed front to back. Enter is delivered starting at the
// front-most interactive object and stops at the first object that stops
// propagation, so objects hidden behind a hovered one are never activated.
//
// A press followed by a release counts as a click only if the pointer
// stayed within a few pixels of where it went down. Larger movements are
// drags and are reported through Drag instead.
type Pointer struct {
	table   *Table
	hovered []Handle
	pressed []Handle

	down     bool
	dragging bool
	downX    float64
	downY    float64
	lastX    float64
	lastY    float64
}

func NewPointer(table *Table) *Pointer {
	return &Pointer{
		table: table,
	}
}

// Hovered returns the objects that currently have the pointer over them.
func (p *Pointer) Hovered() []Handle {
	return slices.Clone(p.hovered)
}

// Move updates hover state for a pointer positioned over hits.
func (p *Pointer) Move(hits []Handle) error {
	var errs []error

	var next []Handle
	for _, handle := range p.interactive(hits) {
		next = append(next, handle)
		if slices.Contains(p.hovered, handle) {
			// still hovered, it keeps shielding what is behind it
			break
		}
		stop, err := p.table.PointerEnter(handle)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if stop {
			break
		}
	}

	for _, handle := range p.hovered {
		if !slices.Contains(next, handle) {
			if err := p.table.PointerLeave(handle); err != nil && !errors.Is(err, ErrUnknownHandle) {
				errs = append(errs, err)
			}
		}
	}
	p.hovered = next
	return errors.Join(errs...)
}

// Leave clears hover state and forgets any pending press, for when the
// pointer exits the viewport.
func (p *Pointer) Leave() error {
	p.down = false
	p.dragging = false
	p.pressed = nil
	return p.Move(nil)
}

// Press records the objects under the pointer when a button goes down at
// x, y.
func (p *Pointer) Press(hits []Handle, x, y float64) {
	p.pressed = p.interactive(hits)
	p.down = true
	p.dragging = false
	p.downX, p.downY = x, y
	p.lastX, p.lastY = x, y
}

// Drag tracks the pointer while a button is held. Once the pointer has
// left the click tolerance it returns the movement since the previous
// reported position and true.
func (p *Pointer) Drag(x, y float64) (dx, dy float64, ok bool) {
	if !p.down {
		return 0, 0, false
	}
	if !p.dragging && math.Hypot(x-p.downX, y-p.downY) <= dragTolerance {
		return 0, 0, false
	}
	p.dragging = true
	dx, dy = x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	return dx, dy, true
}

// Dragging reports whether the held button has turned into a drag.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Release ends a press at x, y. Unless the press turned into a drag, every
// interactive object that was under the pointer both when the button went
// down and now is clicked.
func (p *Pointer) Release(hits []Handle, x, y float64) error {
	if !p.down {
		return nil
	}
	p.Drag(x, y)
	defer func() {
		p.down = false
		p.dragging = false
		p.pressed = nil
	}()
	if p.dragging {
		return nil
	}

	var errs []error
	for _, handle := range p.interactive(hits) {
		if !slices.Contains(p.pressed, handle) {
			continue
		}
		if err := p.table.Click(handle); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Pointer) interactive(hits []Handle) []Handle {
	var result []Handle
	for _, handle := range hits {
		object, ok := p.table.Get(handle)
		if !ok || !object.Kind.Interactive() {
			continue
		}
		result = append(result, handle)
	}
	return result
}
