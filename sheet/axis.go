// SPDX-License-Identifier: Unlicense OR MIT

package sheet

// sideAxis implements left and right sheets. The sheet closes
// when dragged towards its edge; sign is the direction of
// closing drags.
type sideAxis struct {
	sign float32
}

// bottomAxis implements bottom sheets.
type bottomAxis struct{}

func (a sideAxis) drag(c *Controller, vp Viewport, delta float32) {
	s := &c.session
	off := s.Primary + delta
	// A side sheet cannot be dragged past its open position.
	if off*a.sign < 0 {
		off = 0
	}
	s.Primary = off
	c.Scrim.SetTarget(off*a.sign < vp.px(sideDismiss))
}

func (a sideAxis) end(c *Controller, vp Viewport) bool {
	return c.session.Primary*a.sign >= vp.px(sideDismiss)
}

func (sideAxis) extent(_ State, vp Viewport) float32 {
	return float32(vp.Size.X) * sideRatio
}

func (b bottomAxis) drag(c *Controller, vp Viewport, delta float32) {
	s := &c.session
	s.Primary += delta
	if s.Primary > 0 {
		limit := float32(halfDismiss)
		if s.State == Expanded {
			limit = expandedDismiss
		}
		c.Scrim.SetTarget(s.Primary < vp.px(limit))
	}
	if s.Primary < 0 {
		s.Secondary = 0
	}
	max := b.max(vp)
	if vp.Orientation() == Landscape {
		if s.Primary >= 0 {
			c.lower(delta, max)
			return
		}
		if s.Extent >= max {
			s.Primary = 0
			return
		}
		c.resize(delta, max)
		return
	}
	switch s.State {
	case Expanded:
		if s.Primary < 0 {
			s.Primary = 0
			return
		}
		if c.cfg.UseOffset && s.Extent <= max/demoteDivisor {
			s.State = HalfExpanded
			s.Primary = 0
			s.Secondary = 0
			return
		}
		c.resize(delta, max)
	default:
		if s.Primary < 0 {
			c.resize(delta, max)
			if s.Extent >= max {
				s.State = Expanded
			}
			return
		}
		s.State = HalfExpanded
		c.lower(delta, max)
	}
}

func (bottomAxis) end(c *Controller, vp Viewport) bool {
	s := &c.session
	if vp.Orientation() == Landscape {
		if s.Primary > 0 {
			return s.Primary > vp.px(halfDismiss)
		}
		s.State = HalfExpanded
		return false
	}
	switch s.State {
	case Expanded:
		if s.Primary > 0 {
			if s.Primary > vp.px(expandedDismiss) {
				return true
			}
			s.State = HalfExpanded
		}
	default:
		s.State = HalfExpanded
		if s.Primary > 0 {
			return s.Primary > vp.px(halfDismiss)
		}
		if s.Primary < -vp.px(promote) {
			s.State = Expanded
		}
	}
	return false
}

func (bottomAxis) extent(st State, vp Viewport) float32 {
	h := float32(vp.Size.Y)
	switch {
	case vp.Orientation() == Landscape:
		return h * landscapeRatio
	case st == Expanded:
		return h * expandedRatio
	default:
		return h * halfRatio
	}
}

// max is the largest extent a drag can grow the sheet to.
func (bottomAxis) max(vp Viewport) float32 {
	h := float32(vp.Size.Y)
	if vp.Orientation() == Landscape {
		return h * landscapeRatio
	}
	return h * expandedRatio
}
