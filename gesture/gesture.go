// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture reduces pointer events to drag gestures.

A Drag follows a single pointer from press to release and reports
its movement along one axis as incremental distances, the form
a sheet controller consumes.
*/
package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

// Drag detects drag gestures in the form of DragEvents.
type Drag struct {
	dragging bool
	grab     bool
	pid      pointer.ID
	// start and last are positions along the drag axis.
	start float32
	last  float32
}

// DragEvent describes one step of a drag gesture.
type DragEvent struct {
	Type DragType
	// Delta is the distance moved since the previous event,
	// in pixels. Only TypeMove events carry a distance.
	Delta float32
}

type DragType uint8

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// TypeStart is reported when a touch or the left mouse
	// button is pressed.
	TypeStart DragType = iota
	// TypeMove is reported for pointer movement past the
	// touch slop.
	TypeMove
	// TypeEnd is reported when the pointer is released or
	// the gesture is cancelled.
	TypeEnd
)

var touchSlop = unit.Dp(3)

// Add the handler to the operation list to receive drag events.
func (d *Drag) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   d,
		Grab:  d.grab,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(ops)
}

// Dragging reports whether a pointer is pressed.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Events returns the drag events along axis since the last call.
func (d *Drag) Events(cfg unit.Metric, q event.Queue, axis Axis) []DragEvent {
	var events []DragEvent
	for _, evt := range q.Events(d) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if d.dragging {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonLeft {
				break
			}
			d.dragging = true
			d.pid = e.PointerID
			d.start = val(axis, e.Position)
			d.last = d.start
			events = append(events, DragEvent{Type: TypeStart})
		case pointer.Drag:
			if !d.dragging || e.PointerID != d.pid {
				break
			}
			v := val(axis, e.Position)
			if !d.grab {
				slop := float32(cfg.Px(touchSlop))
				if dist := v - d.start; dist < slop && -slop < dist {
					break
				}
				d.grab = true
			}
			events = append(events, DragEvent{Type: TypeMove, Delta: v - d.last})
			d.last = v
		case pointer.Release:
			if !d.dragging || e.PointerID != d.pid {
				break
			}
			d.dragging = false
			d.grab = false
			events = append(events, DragEvent{Type: TypeEnd})
		case pointer.Cancel:
			// Cancel carries no pointer ID.
			wasDragging := d.dragging
			d.dragging = false
			d.grab = false
			if wasDragging {
				events = append(events, DragEvent{Type: TypeEnd})
			}
		}
	}
	return events
}

func val(axis Axis, p f32.Point) float32 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (dt DragType) String() string {
	switch dt {
	case TypeStart:
		return "TypeStart"
	case TypeMove:
		return "TypeMove"
	case TypeEnd:
		return "TypeEnd"
	default:
		panic("invalid DragType")
	}
}
