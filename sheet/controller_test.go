// SPDX-License-Identifier: Unlicense OR MIT

package sheet

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"gioui.org/unit"
)

var (
	portrait  = Viewport{Size: image.Pt(400, 1000), Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}}
	landscape = Viewport{Size: image.Pt(1000, 400), Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}}
)

type dismissCounter int

func (d *dismissCounter) dismiss() { *d++ }

func newTestController(dir Direction, vp Viewport, useOffset bool) (*Controller, *dismissCounter) {
	n := new(dismissCounter)
	c := NewController(dir, vp, Config{UseOffset: useOffset, OnDismiss: n.dismiss})
	return c, n
}

// drag runs a complete drag of the given deltas.
func drag(c *Controller, vp Viewport, deltas ...float32) Resolution {
	c.OnDragStart()
	for _, d := range deltas {
		c.OnDrag(vp, d)
	}
	return c.OnDragEnd(vp)
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestInitialGeometry(t *testing.T) {
	for _, tc := range []struct {
		dir    Direction
		vp     Viewport
		state  State
		extent float32
	}{
		{Bottom, portrait, HalfExpanded, 500},
		{Bottom, landscape, HalfExpanded, 352},
		{Left, portrait, Expanded, 232},
		{Right, landscape, Expanded, 580},
	} {
		t.Run(tc.dir.String()+"/"+tc.vp.Orientation().String(), func(t *testing.T) {
			c, _ := newTestController(tc.dir, tc.vp, false)
			g := c.Geometry(tc.vp)
			if g.State != tc.state {
				t.Errorf("got state %v, expected %v", g.State, tc.state)
			}
			if !approxEqual(g.Extent, tc.extent) {
				t.Errorf("got extent %v, expected %v", g.Extent, tc.extent)
			}
			if g.Offset != 0 || !g.ScrimVisible {
				t.Errorf("got offset %v, scrim %v; expected 0, true", g.Offset, g.ScrimVisible)
			}
		})
	}
}

func TestBottomSettleWithoutMovement(t *testing.T) {
	c, n := newTestController(Bottom, portrait, false)
	r := drag(c, portrait)
	if r.Dismiss || *n != 0 {
		t.Fatal("sheet dismissed without movement")
	}
	if r.State != HalfExpanded {
		t.Errorf("got state %v, expected HalfExpanded", r.State)
	}
	if r.Extent != 500 {
		t.Errorf("got extent %v, expected 500", r.Extent)
	}
}

func TestBottomPromotion(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, false)
	c.OnDragStart()
	// 950/3.2 grows the sheet to just below 0.8 of the height.
	g := c.OnDrag(portrait, -950)
	if g.State != HalfExpanded {
		t.Fatalf("promoted at extent %v", g.Extent)
	}
	g = c.OnDrag(portrait, -10)
	if g.State != Expanded {
		t.Fatalf("got state %v at extent %v, expected Expanded", g.State, g.Extent)
	}
	if g.Extent != 800 {
		t.Errorf("got extent %v, expected 800", g.Extent)
	}
	// Further upward drags are clamped.
	g = c.OnDrag(portrait, -200)
	if g.Extent != 800 || c.Session().Primary != 0 {
		t.Errorf("got extent %v, primary %v after upward drag when expanded", g.Extent, c.Session().Primary)
	}
	r := c.OnDragEnd(portrait)
	if r.State != Expanded || r.Extent != 800 {
		t.Errorf("got %v/%v, expected Expanded/800", r.State, r.Extent)
	}
}

func TestBottomPromotionExactThreshold(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, false)
	c.OnDragStart()
	if g := c.OnDrag(portrait, -960); g.State != Expanded {
		t.Errorf("got state %v at extent %v, expected Expanded", g.State, g.Extent)
	}
}

func TestBottomDragEndPromotion(t *testing.T) {
	for _, tc := range []struct {
		delta float32
		want  State
	}{
		{-100, HalfExpanded},
		{-101, Expanded},
	} {
		c, _ := newTestController(Bottom, portrait, false)
		r := drag(c, portrait, tc.delta)
		if r.State != tc.want {
			t.Errorf("drag %v: got state %v, expected %v", tc.delta, r.State, tc.want)
		}
		if r.Offset != 0 || c.Session().Primary != 0 {
			t.Errorf("drag %v: offsets not reset", tc.delta)
		}
	}
}

func expanded(t *testing.T, useOffset bool) (*Controller, *dismissCounter) {
	t.Helper()
	c, n := newTestController(Bottom, portrait, useOffset)
	if r := drag(c, portrait, -960); r.State != Expanded {
		t.Fatalf("got state %v, expected Expanded", r.State)
	}
	return c, n
}

func TestBottomExpandedDismissBoundary(t *testing.T) {
	c, n := expanded(t, false)
	r := drag(c, portrait, 300)
	if r.Dismiss || *n != 0 {
		t.Fatal("dismissed at 300dp")
	}
	if r.State != HalfExpanded || r.Extent != 500 {
		t.Errorf("got %v/%v, expected HalfExpanded/500", r.State, r.Extent)
	}

	c, n = expanded(t, false)
	r = drag(c, portrait, 301)
	if !r.Dismiss || *n != 1 {
		t.Fatalf("got dismiss %v with %d callbacks, expected one dismissal", r.Dismiss, *n)
	}
	if r.State != Dismissed {
		t.Errorf("got state %v, expected Dismissed", r.State)
	}
}

func TestBottomHalfDismissBoundary(t *testing.T) {
	for _, tc := range []struct {
		delta   float32
		dismiss bool
	}{
		{120, false},
		{121, true},
	} {
		for _, useOffset := range []bool{false, true} {
			c, n := newTestController(Bottom, portrait, useOffset)
			r := drag(c, portrait, tc.delta/2, tc.delta/2)
			if r.Dismiss != tc.dismiss || (*n == 1) != tc.dismiss {
				t.Errorf("drag %v offset %v: got dismiss %v, expected %v", tc.delta, useOffset, r.Dismiss, tc.dismiss)
			}
		}
	}
}

func TestBottomRoundTrip(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, false)
	r := drag(c, portrait, -40, -10, 10, 40)
	if r.State != HalfExpanded || r.Extent != 500 || r.Offset != 0 {
		t.Errorf("got %+v, expected settled half expanded sheet", r.Geometry)
	}

	c, _ = expanded(t, true)
	r = drag(c, portrait, 30, 20, -50)
	if r.State != Expanded || r.Extent != 800 || r.Offset != 0 {
		t.Errorf("got %+v, expected settled expanded sheet", r.Geometry)
	}
	if s := c.Session(); s.Primary != 0 || s.Secondary != 0 {
		t.Errorf("offsets not reset: %+v", s)
	}
}

func TestBottomOffsetMode(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, true)
	c.OnDragStart()
	g := c.OnDrag(portrait, 30)
	g = c.OnDrag(portrait, 20)
	if g.Offset != 50 || g.Extent != 500 {
		t.Errorf("got offset %v extent %v, expected 50, 500", g.Offset, g.Extent)
	}
	r := c.OnDragEnd(portrait)
	if r.Offset != 0 || r.Extent != 500 {
		t.Errorf("got offset %v extent %v after settle", r.Offset, r.Extent)
	}

	c, _ = newTestController(Bottom, portrait, false)
	c.OnDragStart()
	g = c.OnDrag(portrait, 64)
	if g.Offset != 0 || g.Extent != 480 {
		t.Errorf("got offset %v extent %v, expected 0, 480", g.Offset, g.Extent)
	}
}

func TestBottomExpandedDemotion(t *testing.T) {
	c, _ := expanded(t, true)
	c.OnDragStart()
	g := c.OnDrag(portrait, 1060)
	if g.State != Expanded {
		t.Fatalf("demoted at extent %v", g.Extent)
	}
	// The extent is now below 0.8/1.7 of the height.
	g = c.OnDrag(portrait, 1)
	if g.State != HalfExpanded {
		t.Fatalf("got state %v at extent %v, expected HalfExpanded", g.State, g.Extent)
	}
	if s := c.Session(); s.Primary != 0 || s.Secondary != 0 {
		t.Errorf("offsets not reset on demotion: %+v", s)
	}
	r := c.OnDragEnd(portrait)
	if r.Dismiss || r.State != HalfExpanded || r.Extent != 500 {
		t.Errorf("got %+v, expected half expanded sheet", r)
	}
}

func TestLandscape(t *testing.T) {
	c, n := newTestController(Bottom, landscape, false)
	c.OnDragStart()
	g := c.OnDrag(landscape, -50)
	if c.Session().Primary != 0 || !approxEqual(g.Extent, 352) {
		t.Errorf("upward drag at max: primary %v extent %v", c.Session().Primary, g.Extent)
	}
	for i := 0; i < 10; i++ {
		g = c.OnDrag(landscape, 10)
		if g.Offset != 0 {
			t.Fatalf("offset %v without offset mode", g.Offset)
		}
	}
	if !approxEqual(g.Extent, 352-100/3.2) {
		t.Errorf("got extent %v, expected %v", g.Extent, 352-100/3.2)
	}
	r := c.OnDragEnd(landscape)
	if r.Dismiss || !approxEqual(r.Extent, 352) {
		t.Errorf("got %+v, expected settled sheet", r)
	}

	r = drag(c, landscape, 120)
	if r.Dismiss || *n != 0 || r.State != HalfExpanded || !approxEqual(r.Extent, 352) {
		t.Errorf("got %+v with %d callbacks at 120dp, expected settled sheet", r, *n)
	}
	r = drag(c, landscape, 121)
	if !r.Dismiss || *n != 1 {
		t.Errorf("got dismiss %v with %d callbacks, expected one dismissal", r.Dismiss, *n)
	}
}

func TestLandscapeOffsetMode(t *testing.T) {
	c, _ := newTestController(Bottom, landscape, true)
	c.OnDragStart()
	g := c.OnDrag(landscape, 80)
	if g.Offset != 80 || !approxEqual(g.Extent, 352) {
		t.Errorf("got offset %v extent %v, expected 80, 352", g.Offset, g.Extent)
	}
}

func TestSideDismiss(t *testing.T) {
	for _, tc := range []struct {
		dir   Direction
		sign  float32
		delta []float32
	}{
		{Left, -1, []float32{-50, -50, -30}},
		{Right, 1, []float32{60, 70}},
	} {
		t.Run(tc.dir.String(), func(t *testing.T) {
			c, n := newTestController(tc.dir, portrait, false)
			r := drag(c, portrait, tc.delta...)
			if !r.Dismiss || *n != 1 {
				t.Fatalf("got dismiss %v with %d callbacks, expected one dismissal", r.Dismiss, *n)
			}
			if c.Scrim.Tap() || *n != 1 {
				t.Errorf("scrim tap after dismissal fired callback")
			}
			drag(c, portrait, 200*tc.sign)
			if *n != 1 {
				t.Errorf("got %d dismissals, expected 1", *n)
			}
		})
	}
}

func TestSideSnapBack(t *testing.T) {
	c, n := newTestController(Left, portrait, false)
	c.OnDragStart()
	g := c.OnDrag(portrait, -109)
	if g.Offset != -109 || !g.ScrimVisible {
		t.Errorf("got offset %v scrim %v", g.Offset, g.ScrimVisible)
	}
	r := c.OnDragEnd(portrait)
	if r.Dismiss || *n != 0 || r.Offset != 0 {
		t.Errorf("got %+v, expected snap back", r)
	}
}

func TestSideOpeningDragIsClamped(t *testing.T) {
	for _, dir := range []Direction{Left, Right} {
		c, _ := newTestController(dir, portrait, false)
		open := float32(1)
		if dir == Right {
			open = -1
		}
		c.OnDragStart()
		for i := 0; i < 5; i++ {
			if g := c.OnDrag(portrait, 25*open); g.Offset != 0 {
				t.Errorf("%v: got offset %v after opening drag", dir, g.Offset)
			}
		}
		c.OnDrag(portrait, -40*open)
		if g := c.OnDrag(portrait, 100*open); g.Offset != 0 {
			t.Errorf("%v: got offset %v, expected reversal to stop at 0", dir, g.Offset)
		}
	}
}

func TestScrimThresholds(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, true)
	c.OnDragStart()
	if g := c.OnDrag(portrait, 119); !g.ScrimVisible {
		t.Error("scrim hidden below 120dp")
	}
	if g := c.OnDrag(portrait, 1); g.ScrimVisible {
		t.Error("scrim visible at 120dp")
	}
	if g := c.OnDrag(portrait, -20); !g.ScrimVisible {
		t.Error("scrim not restored below 120dp")
	}

	c, _ = expanded(t, false)
	c.OnDragStart()
	if g := c.OnDrag(portrait, 299); !g.ScrimVisible {
		t.Error("expanded scrim hidden below 300dp")
	}
	if g := c.OnDrag(portrait, 1); g.ScrimVisible {
		t.Error("expanded scrim visible at 300dp")
	}
}

func TestNeverNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, dir := range []Direction{Bottom, Left, Right} {
		for _, vp := range []Viewport{portrait, landscape} {
			for _, useOffset := range []bool{false, true} {
				c, _ := newTestController(dir, vp, useOffset)
				for i := 0; i < 200 && c.Session().State != Dismissed; i++ {
					if i%20 == 0 {
						c.OnDragEnd(vp)
						c.OnDragStart()
					}
					g := c.OnDrag(vp, rnd.Float32()*400-200)
					s := c.Session()
					if g.Extent < 0 || s.Secondary < 0 {
						t.Fatalf("%v/%v: negative geometry %+v", dir, vp.Orientation(), s)
					}
					switch dir {
					case Left:
						if s.Primary > 0 {
							t.Fatalf("left sheet opened past rest: %v", s.Primary)
						}
					case Right:
						if s.Primary < 0 {
							t.Fatalf("right sheet opened past rest: %v", s.Primary)
						}
					}
				}
			}
		}
	}
}

func TestGeometryFollowsRotation(t *testing.T) {
	c, _ := newTestController(Bottom, portrait, false)
	if g := c.Geometry(landscape); !approxEqual(g.Extent, 352) {
		t.Errorf("got extent %v after rotation, expected 352", g.Extent)
	}
	if g := c.Geometry(portrait); g.Extent != 500 {
		t.Errorf("got extent %v after rotation, expected 500", g.Extent)
	}
}

func TestMetricScaling(t *testing.T) {
	vp := portrait
	vp.Metric = unit.Metric{PxPerDp: 2, PxPerSp: 2}
	c, _ := newTestController(Left, vp, false)
	if r := drag(c, vp, -200); r.Dismiss {
		t.Error("dismissed at 100dp")
	}
	if r := drag(c, vp, -220); !r.Dismiss {
		t.Error("not dismissed at 110dp")
	}
}
