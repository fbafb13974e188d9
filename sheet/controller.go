// SPDX-License-Identifier: Unlicense OR MIT

package sheet

// Session is the mutable geometry of a visible sheet.
type Session struct {
	Direction Direction
	State     State
	// Primary is the drag displacement along the primary
	// axis since the sheet last settled.
	Primary float32
	// Secondary is the offset applied to a bottom sheet in
	// offset mode. It stays zero while the extent absorbs
	// the drag.
	Secondary float32
	// Extent is the sheet height or width in pixels.
	Extent float32

	markedForDismiss bool
}

// Config holds the options of a Controller.
type Config struct {
	// UseOffset makes a bottom sheet slide down instead of
	// shrinking when dragged downwards.
	UseOffset bool
	// OnDismiss is called once when the sheet is dismissed,
	// either by a drag or by a scrim tap.
	OnDismiss func()
}

// Controller converts drag deltas into sheet geometry.
type Controller struct {
	Scrim Scrim

	cfg      Config
	session  Session
	axis     axis
	dragging bool
}

// axis implements the drag rules of one direction.
type axis interface {
	// drag applies delta to the session.
	drag(c *Controller, vp Viewport, delta float32)
	// end resolves the session state at drag end and
	// reports whether the sheet should be dismissed.
	end(c *Controller, vp Viewport) bool
	// extent returns the resting extent for a state.
	extent(st State, vp Viewport) float32
}

// NewController returns the Controller of a sheet attached
// to the dir edge of vp.
func NewController(dir Direction, vp Viewport, cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	switch dir {
	case Left:
		c.axis = sideAxis{sign: -1}
		c.session.State = Expanded
	case Right:
		c.axis = sideAxis{sign: 1}
		c.session.State = Expanded
	default:
		dir = Bottom
		c.axis = bottomAxis{}
		c.session.State = HalfExpanded
	}
	c.session.Direction = dir
	c.session.Extent = c.axis.extent(c.session.State, vp)
	c.Scrim = Scrim{visible: true, onTap: c.dismiss}
	return c
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// OnDragStart resets the dismiss latch.
func (c *Controller) OnDragStart() {
	c.session.markedForDismiss = false
	if c.session.State != Dismissed {
		c.dragging = true
	}
}

// OnDrag applies a drag of delta pixels along the primary
// axis: positive values move down for bottom sheets and
// right for side sheets.
func (c *Controller) OnDrag(vp Viewport, delta float32) Geometry {
	if c.session.State == Dismissed {
		return c.geometry()
	}
	c.dragging = true
	c.axis.drag(c, vp, delta)
	return c.geometry()
}

// OnDragEnd settles the sheet or dismisses it.
func (c *Controller) OnDragEnd(vp Viewport) Resolution {
	c.dragging = false
	if c.session.State == Dismissed {
		return Resolution{Geometry: c.geometry(), Dismiss: true}
	}
	c.session.markedForDismiss = c.axis.end(c, vp)
	if c.session.markedForDismiss {
		c.dismiss()
		return Resolution{Geometry: c.geometry(), Dismiss: true}
	}
	c.session.Primary = 0
	c.session.Secondary = 0
	c.session.Extent = c.axis.extent(c.session.State, vp)
	c.Scrim.SetTarget(true)
	return Resolution{Geometry: c.geometry()}
}

// Geometry returns the current geometry. A sheet at rest
// follows the viewport, so that rotating the window resizes
// it.
func (c *Controller) Geometry(vp Viewport) Geometry {
	if !c.dragging && c.session.State != Dismissed {
		c.session.Extent = c.axis.extent(c.session.State, vp)
	}
	return c.geometry()
}

func (c *Controller) geometry() Geometry {
	g := Geometry{
		Direction:    c.session.Direction,
		State:        c.session.State,
		Extent:       c.session.Extent,
		ScrimVisible: c.Scrim.Visible(),
	}
	if c.session.Direction == Bottom {
		g.Offset = c.session.Secondary
	} else {
		g.Offset = c.session.Primary
	}
	return g
}

// resize changes the extent by the damped delta, within
// [0, max].
func (c *Controller) resize(delta, max float32) {
	e := c.session.Extent - delta/dampen
	if e > max {
		e = max
	}
	if e < 0 {
		e = 0
	}
	c.session.Extent = e
}

// lower moves a bottom sheet down, either by offsetting it
// or by shrinking it.
func (c *Controller) lower(delta, max float32) {
	if c.cfg.UseOffset {
		c.session.Secondary = c.session.Primary
		return
	}
	c.resize(delta, max)
}

func (c *Controller) dismiss() {
	if c.session.State == Dismissed {
		return
	}
	c.session.State = Dismissed
	c.dragging = false
	c.Scrim.SetTarget(false)
	if c.cfg.OnDismiss != nil {
		c.cfg.OnDismiss()
	}
}
