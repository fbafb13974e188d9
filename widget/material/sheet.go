// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	gmaterial "gioui.org/widget/material"

	"github.com/sheet/draggablebottomsheet/sheet"
	"github.com/sheet/draggablebottomsheet/widget"
)

// DefaultMaxWidth is the default width limit of bottom sheets.
var DefaultMaxWidth = unit.Dp(640)

// Corners are the corner radii of a sheet surface.
type Corners struct {
	NW, NE, SE, SW unit.Value
}

// SheetStyle draws a sheet, its drag handle and the scrim
// behind it.
type SheetStyle struct {
	Sheet *widget.Sheet
	// MaxWidth makes a bottom sheet span the window width.
	// It has no effect on side sheets.
	MaxWidth bool
	// BottomMaxWidth limits the width of a bottom sheet when
	// MaxWidth is not set.
	BottomMaxWidth unit.Value
	ScrimColor     color.RGBA
	Background     color.RGBA
	BarColor       color.RGBA
	Corners        Corners
	// Bar replaces the default drag handle bar. It is laid
	// out centered in the handle strip.
	Bar layout.Widget
}

// UniformCorners returns Corners with all radii set to r.
func UniformCorners(r unit.Value) Corners {
	return Corners{NW: r, NE: r, SE: r, SW: r}
}

// Sheet returns the style for s, with the scrim derived from
// the theme text color. Colors are premultiplied.
func Sheet(th *gmaterial.Theme, s *widget.Sheet) SheetStyle {
	scrim := mulAlpha(th.Color.Text, 0x52/255.0)
	return SheetStyle{
		Sheet:          s,
		BottomMaxWidth: DefaultMaxWidth,
		ScrimColor:     scrim,
		Background:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		BarColor:       color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	}
}

// Layout lays out the sheet over the area in
// gtx.Constraints.Max.
func (s SheetStyle) Layout(gtx layout.Context, content layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	g := s.Sheet.Update(gtx)
	s.layoutScrim(gtx, size)
	switch {
	case g.State == sheet.Dismissed:
	case g.Direction == sheet.Bottom:
		s.layoutBottom(gtx, g, content)
	default:
		s.layoutSide(gtx, g, content)
	}
	return layout.Dimensions{Size: size}
}

func (s SheetStyle) layoutScrim(gtx layout.Context, size image.Point) {
	if a := s.Sheet.ScrimAlpha(); a > 0 && s.ScrimColor.A > 0 {
		st := op.Push(gtx.Ops)
		clip.Rect(image.Rectangle{Max: size}).Add(gtx.Ops)
		paint.ColorOp{Color: mulAlpha(s.ScrimColor, a)}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		st.Pop()
	}
	s.Sheet.LayoutScrim(gtx)
}

func (s SheetStyle) layoutBottom(gtx layout.Context, g sheet.Geometry, content layout.Widget) {
	win := gtx.Constraints.Max
	width := win.X
	if !s.MaxWidth {
		maxw := s.BottomMaxWidth
		if maxw.V == 0 {
			maxw = DefaultMaxWidth
		}
		if w := gtx.Px(maxw); w < width {
			width = w
		}
	}
	height := int(g.Extent + .5)
	if height > win.Y {
		height = win.Y
	}
	origin := f32.Pt(float32(win.X-width)/2, float32(win.Y-height)+g.Offset)
	strip := image.Pt(width, gtx.Px(unit.Dp(42)))

	defer op.Push(gtx.Ops).Pop()
	op.Offset(origin).Add(gtx.Ops)
	s.surface(gtx, image.Pt(width, height))

	s.handle(gtx, strip, image.Pt(gtx.Px(unit.Dp(48)), gtx.Px(unit.Dp(4))))

	op.Offset(f32.Pt(0, float32(strip.Y))).Add(gtx.Ops)
	s.content(gtx, image.Pt(width, height-strip.Y), content)
}

func (s SheetStyle) layoutSide(gtx layout.Context, g sheet.Geometry, content layout.Widget) {
	win := gtx.Constraints.Max
	width := int(g.Extent + .5)
	if width > win.X {
		width = win.X
	}
	x := g.Offset
	if g.Direction == sheet.Right {
		x += float32(win.X - width)
	}
	strip := image.Pt(gtx.Px(unit.Dp(40)), win.Y)
	bar := image.Pt(gtx.Px(unit.Dp(4)), gtx.Px(unit.Dp(50)))
	if g.Direction == sheet.Right {
		bar.Y = gtx.Px(unit.Dp(48))
	}
	body := image.Pt(width-strip.X, win.Y)

	defer op.Push(gtx.Ops).Pop()
	op.Offset(f32.Pt(x, 0)).Add(gtx.Ops)
	s.surface(gtx, image.Pt(width, win.Y))

	if g.Direction == sheet.Left {
		s.content(gtx, body, content)
		op.Offset(f32.Pt(float32(body.X), 0)).Add(gtx.Ops)
		s.handle(gtx, strip, bar)
		return
	}
	s.handle(gtx, strip, bar)
	op.Offset(f32.Pt(float32(strip.X), 0)).Add(gtx.Ops)
	s.content(gtx, body, content)
}

// surface clips to the sheet shape and paints its background.
// The clip stays in effect for the caller's stack.
func (s SheetStyle) surface(gtx layout.Context, size image.Point) {
	s.Sheet.LayoutSurface(gtx, size)
	clip.RRect{
		Rect: f32.Rectangle{Max: layout.FPt(size)},
		NW:   float32(gtx.Px(s.Corners.NW)),
		NE:   float32(gtx.Px(s.Corners.NE)),
		SE:   float32(gtx.Px(s.Corners.SE)),
		SW:   float32(gtx.Px(s.Corners.SW)),
	}.Add(gtx.Ops)
	paint.ColorOp{Color: s.Background}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// handle lays out the drag strip and its bar.
func (s SheetStyle) handle(gtx layout.Context, strip, bar image.Point) {
	defer op.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(strip)
	if s.Bar != nil {
		layout.Center.Layout(gtx, s.Bar)
	} else {
		s.bar(gtx, strip, bar)
	}
	s.Sheet.LayoutHandle(gtx, strip)
}

// bar draws the default handle bar: centered in a bottom
// sheet strip, inset from the start of a side strip.
func (s SheetStyle) bar(gtx layout.Context, strip, bar image.Point) {
	defer op.Push(gtx.Ops).Pop()
	pos := image.Pt((strip.X-bar.X)/2, (strip.Y-bar.Y)/2)
	if bar.Y > bar.X {
		pos.X = gtx.Px(unit.Dp(13))
	}
	op.Offset(layout.FPt(pos)).Add(gtx.Ops)
	r := float32(gtx.Px(unit.Dp(2)))
	clip.RRect{
		Rect: f32.Rectangle{Max: layout.FPt(bar)},
		NW:   r, NE: r, SE: r, SW: r,
	}.Add(gtx.Ops)
	paint.ColorOp{Color: s.BarColor}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (s SheetStyle) content(gtx layout.Context, size image.Point, w layout.Widget) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	defer op.Push(gtx.Ops).Pop()
	clip.Rect(image.Rectangle{Max: size}).Add(gtx.Ops)
	gtx.Constraints = layout.Exact(size)
	w(gtx)
}

// mulAlpha scales the premultiplied color c by alpha in [0, 1].
func mulAlpha(c color.RGBA, alpha float32) color.RGBA {
	switch {
	case alpha >= 1:
		return c
	case alpha <= 0:
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 {
		return uint8(float32(v)*alpha + .5)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
