// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	giogesture "gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/sheet/draggablebottomsheet/gesture"
	"github.com/sheet/draggablebottomsheet/internal/anim"
	"github.com/sheet/draggablebottomsheet/sheet"
)

// Sheet is the state of a draggable sheet. A Sheet is
// created when the sheet becomes visible and discarded
// once Dismissed reports true.
type Sheet struct {
	Direction sheet.Direction
	// UseOffset makes a bottom sheet slide down instead of
	// shrinking when dragged downwards.
	UseOffset bool
	// OnDismiss is called once when the sheet is dismissed.
	OnDismiss func()

	ctrl      *sheet.Controller
	drag      gesture.Drag
	scrim     giogesture.Click
	fade      anim.Tween
	alpha     float32
	dismissed bool
	geometry  sheet.Geometry
}

// Update processes pointer events and returns the sheet
// geometry for the window size in gtx.Constraints.Max.
func (s *Sheet) Update(gtx layout.Context) sheet.Geometry {
	vp := sheet.Viewport{Size: gtx.Constraints.Max, Metric: gtx.Metric}
	if s.ctrl == nil {
		s.ctrl = sheet.NewController(s.Direction, vp, sheet.Config{
			UseOffset: s.UseOffset,
			OnDismiss: s.dismiss,
		})
	}
	for _, e := range s.drag.Events(gtx.Metric, gtx, s.axis()) {
		switch e.Type {
		case gesture.TypeStart:
			s.ctrl.OnDragStart()
		case gesture.TypeMove:
			s.ctrl.OnDrag(vp, e.Delta)
		case gesture.TypeEnd:
			s.ctrl.OnDragEnd(vp)
		}
	}
	for _, e := range s.scrim.Events(gtx) {
		if e.Type == giogesture.TypeClick {
			s.ctrl.Scrim.Tap()
		}
	}
	s.alpha = s.fade.Animate(gtx.Now, s.ctrl.Scrim.Target())
	if s.fade.Active() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	s.geometry = s.ctrl.Geometry(vp)
	return s.geometry
}

// Geometry returns the geometry computed by the last Update.
func (s *Sheet) Geometry() sheet.Geometry {
	return s.geometry
}

// ScrimAlpha returns the eased scrim opacity in [0, 1].
func (s *Sheet) ScrimAlpha() float32 {
	return s.alpha
}

// Dismissed reports whether the sheet was dismissed since the
// last call to Dismissed.
func (s *Sheet) Dismissed() bool {
	d := s.dismissed
	s.dismissed = false
	return d
}

// Dragging reports whether a drag is in progress.
func (s *Sheet) Dragging() bool {
	return s.ctrl != nil && s.ctrl.Dragging()
}

// LayoutScrim adds the tap to dismiss area of the scrim. The
// area is only active while the scrim is visible.
func (s *Sheet) LayoutScrim(gtx layout.Context) {
	if s.ctrl == nil || !s.ctrl.Scrim.Visible() {
		return
	}
	defer op.Push(gtx.Ops).Pop()
	pointer.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Add(gtx.Ops)
	s.scrim.Add(gtx.Ops)
}

// LayoutSurface keeps pointer events on the sheet surface from
// reaching the scrim.
func (s *Sheet) LayoutSurface(gtx layout.Context, size image.Point) {
	defer op.Push(gtx.Ops).Pop()
	pointer.Rect(image.Rectangle{Max: size}).Add(gtx.Ops)
	pointer.InputOp{Tag: &s.geometry, Types: pointer.Press | pointer.Release}.Add(gtx.Ops)
}

// LayoutHandle adds the drag area of the sheet handle.
func (s *Sheet) LayoutHandle(gtx layout.Context, size image.Point) {
	defer op.Push(gtx.Ops).Pop()
	pointer.Rect(image.Rectangle{Max: size}).Add(gtx.Ops)
	s.drag.Add(gtx.Ops)
}

func (s *Sheet) axis() gesture.Axis {
	if s.Direction == sheet.Bottom {
		return gesture.Vertical
	}
	return gesture.Horizontal
}

func (s *Sheet) dismiss() {
	s.dismissed = true
	if s.OnDismiss != nil {
		s.OnDismiss()
	}
}
