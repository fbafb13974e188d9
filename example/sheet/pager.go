// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/sheet/draggablebottomsheet/internal/anim"
)

const pageDuration = 300 * time.Millisecond

// Pager slides between the previous and the current page.
type Pager struct {
	push  int
	dir   float32
	slide anim.Tween

	// last and next hold the recorded pages. The previous
	// page is replayed from its last frame while sliding out.
	last, next         *op.Ops
	lastCall, nextCall op.CallOp
}

// Forward slides the current page out to the left.
func (p *Pager) Forward() { p.push = 1 }

// Back slides the current page out to the right.
func (p *Pager) Back() { p.push = -1 }

// Layout lays out the current page w.
func (p *Pager) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	if p.push != 0 {
		p.last, p.next = p.next, new(op.Ops)
		p.lastCall = p.nextCall
		p.dir = float32(p.push)
		p.push = 0
		p.slide = anim.Tween{Duration: pageDuration}
		p.slide.Animate(gtx.Now, 0)
	}
	t := p.slide.Animate(gtx.Now, 1)
	if p.slide.Active() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	if p.next == nil {
		p.next = new(op.Ops)
	}
	p.next.Reset()
	var dims layout.Dimensions
	{
		gtx := gtx
		gtx.Ops = p.next
		m := op.Record(gtx.Ops)
		dims = w(gtx)
		p.nextCall = m.Stop()
	}

	if t >= 1 || p.last == nil {
		p.nextCall.Add(gtx.Ops)
		return dims
	}

	defer op.Push(gtx.Ops).Pop()
	width := float32(dims.Size.X)
	op.Offset(f32.Pt(-p.dir*width*t, 0)).Add(gtx.Ops)
	p.lastCall.Add(gtx.Ops)
	op.Offset(f32.Pt(p.dir*width, 0)).Add(gtx.Ops)
	p.nextCall.Add(gtx.Ops)
	return dims
}
