// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sheet implements the drag state machine of a draggable sheet.

A sheet slides in from the bottom, left or right edge of the window.
A Controller consumes drag deltas along the sheet's primary axis and
derives the sheet extent and offset from them. When the drag ends the
Controller settles the sheet in a stable state or dismisses it.

Bottom sheets rest half expanded or expanded. Side sheets have a fixed
width and are either open or dismissed.

The Scrim tracks whether the overlay behind the sheet should be shown.
The package holds no animation or drawing state; see the widget and
widget/material packages for that.
*/
package sheet

import (
	"image"

	"gioui.org/unit"
)

// Direction is the window edge a sheet is attached to.
type Direction uint8

// Orientation of the window.
type Orientation uint8

// State is the resting state of a sheet.
type State uint8

const (
	Bottom Direction = iota
	Left
	Right
)

const (
	Portrait Orientation = iota
	Landscape
)

const (
	// HalfExpanded is the initial state of bottom sheets.
	HalfExpanded State = iota
	// Expanded is the fully open state. Side sheets are
	// always Expanded while open.
	Expanded
	// Dismissed is final.
	Dismissed
)

// Height ratios of a bottom sheet, relative to the window height,
// and the width ratio of side sheets relative to the window width.
const (
	halfRatio      = 0.5
	expandedRatio  = 0.8
	landscapeRatio = 0.88
	sideRatio      = 0.58
)

const (
	// dampen maps drag distance to extent change.
	dampen = 3.2
	// demoteDivisor bounds the extent below which an expanded
	// sheet in offset mode drops to half expanded mid drag.
	demoteDivisor = 1.7
)

// Distances in dp.
const (
	sideDismiss     = 110
	halfDismiss     = 120
	expandedDismiss = 300
	promote         = 100
)

// Viewport describes the window a sheet is laid out in. It is
// read on every callback so that orientation changes take
// effect immediately.
type Viewport struct {
	Size   image.Point
	Metric unit.Metric
}

// Geometry is the layout of a sheet.
type Geometry struct {
	Direction Direction
	State     State
	// Extent is the height of a bottom sheet or the width
	// of a side sheet, in pixels.
	Extent float32
	// Offset is the translation of the sheet along its
	// primary axis, in pixels. Positive values move the
	// sheet down or to the right.
	Offset float32
	// ScrimVisible is the scrim target visibility.
	ScrimVisible bool
}

// Resolution is the outcome of a drag.
type Resolution struct {
	Geometry
	Dismiss bool
}

// Orientation reports landscape for windows wider than tall.
func (v Viewport) Orientation() Orientation {
	if v.Size.X > v.Size.Y {
		return Landscape
	}
	return Portrait
}

// px converts a distance in dp to pixels.
func (v Viewport) px(dp float32) float32 {
	return float32(v.Metric.Px(unit.Dp(dp)))
}

func (d Direction) String() string {
	switch d {
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Direction")
	}
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	default:
		panic("invalid Orientation")
	}
}

func (s State) String() string {
	switch s {
	case HalfExpanded:
		return "HalfExpanded"
	case Expanded:
		return "Expanded"
	case Dismissed:
		return "Dismissed"
	default:
		panic("invalid State")
	}
}
